package repository

import (
	"sort"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

type Habits struct {
	s *store.Store
}

func NewHabits(s *store.Store) *Habits {
	return &Habits{s: s}
}

// HabitView is the read-time shape served by GET /api/habits: the habit's
// static fields plus a window of its most recent logs (oldest first) and a
// parallel array of just the values. Full history stays in storage.
type HabitView struct {
	ID     int                  `json:"id"`
	Name   string               `json:"name"`
	Icon   string               `json:"icon"`
	Unit   string               `json:"unit"`
	Target float64              `json:"target"`
	Color  string               `json:"color"`
	Logs   []dashboard.HabitLog `json:"logs"`
	Values []float64            `json:"values"`
}

const logWindow = 7

// List returns every habit with its last 7 chronologically ordered logs.
// Habits with fewer logs return everything they have, oldest first.
func (r *Habits) List() []HabitView {
	var out []HabitView
	r.s.View(func(d *dashboard.Data) {
		out = make([]HabitView, 0, len(d.Habits))
		for _, h := range d.Habits {
			logs := append([]dashboard.HabitLog(nil), h.Logs...)
			sort.SliceStable(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
			if len(logs) > logWindow {
				logs = logs[len(logs)-logWindow:]
			}
			values := make([]float64, len(logs))
			for i, l := range logs {
				values[i] = l.Value
			}
			out = append(out, HabitView{
				ID: h.ID, Name: h.Name, Icon: h.Icon, Unit: h.Unit,
				Target: h.Target, Color: h.Color, Logs: logs, Values: values,
			})
		}
	})
	return out
}

// LogDay upserts the value for one (habit, date) pair: an existing entry for
// that date is overwritten in place, otherwise a new entry is appended.
func (r *Habits) LogDay(habitID int, date string, value float64) error {
	return r.s.Update(func(d *dashboard.Data) error {
		for i := range d.Habits {
			h := &d.Habits[i]
			if h.ID != habitID {
				continue
			}
			for j := range h.Logs {
				if h.Logs[j].Date == date {
					h.Logs[j].Value = value
					return nil
				}
			}
			h.Logs = append(h.Logs, dashboard.HabitLog{Date: date, Value: value})
			return nil
		}
		return ErrNotFound
	})
}
