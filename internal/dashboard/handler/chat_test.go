package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/stretchr/testify/require"
)

func TestChatPostAndValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"role":"user"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "role and content are required")

	w = doJSON(t, r, http.MethodPost, "/api/chat", `{"role":"user","content":"How should I study for OS?"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var msg dashboard.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Equal(t, 2, msg.ID)
	require.NotEmpty(t, msg.Time)
}

func TestChatClearLeavesWelcomeMessage(t *testing.T) {
	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/chat", `{"role":"user","content":"one"}`)
	doJSON(t, r, http.MethodPost, "/api/chat", `{"role":"ai","content":"two"}`)

	w := doJSON(t, r, http.MethodDelete, "/api/chat", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/chat", "")
	var list []dashboard.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, 1, list[0].ID)
	require.Equal(t, dashboard.WelcomeContent, list[0].Content)
	require.Equal(t, dashboard.WelcomeTime, list[0].Time)

	// next message after a clear is always id 2
	w = doJSON(t, r, http.MethodPost, "/api/chat", `{"role":"user","content":"again"}`)
	var msg dashboard.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	require.Equal(t, 2, msg.ID)
}
