package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/stretchr/testify/require"
)

func TestMoodPostUpsertsByDate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/mood", `{"date":"2026-02-22","mood":"😴","moodScore":4,"energy":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/mood", `{"date":"2026-02-22","mood":"😊","moodScore":8,"energy":7,"note":"better now"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var second dashboard.MoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	require.Equal(t, 9, second.ID)
	require.Equal(t, 3, second.Stress, "stress defaults to 10 - energy")

	w = doJSON(t, r, http.MethodGet, "/api/mood", "")
	var list []dashboard.MoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 7)

	var matched []dashboard.MoodLog
	for _, l := range list {
		if l.Date == "2026-02-22" {
			matched = append(matched, l)
		}
	}
	require.Len(t, matched, 1)
	require.Equal(t, 9, matched[0].ID)
	require.Equal(t, "better now", matched[0].Note)
}

func TestMoodPostValidation(t *testing.T) {
	r := newTestRouter(t)

	// energy missing
	w := doJSON(t, r, http.MethodPost, "/api/mood", `{"date":"2026-02-23","mood":"😊","moodScore":7}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "date, mood, moodScore, energy are required")
}

func TestMoodListAscending(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/mood", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []dashboard.MoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	for i := 1; i < len(list); i++ {
		require.Less(t, list[i-1].Date, list[i].Date)
	}
}
