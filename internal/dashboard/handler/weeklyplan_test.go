package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeeklyPlanNullUntilSaved(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/weekly-plan", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "null", w.Body.String())
}

func TestWeeklyPlanSaveAndGet(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/weekly-plan", `{"inputs":{"focus":"math"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "plan is required")

	w = doJSON(t, r, http.MethodPost, "/api/weekly-plan", `{"plan":{"monday":["CS301 problem set"]},"inputs":{"focus":"math"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/weekly-plan", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Plan        map[string]any `json:"plan"`
		Inputs      map[string]any `json:"inputs"`
		GeneratedAt string         `json:"generatedAt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Contains(t, got.Plan, "monday")
	require.Equal(t, "math", got.Inputs["focus"])
	require.NotEmpty(t, got.GeneratedAt)
}
