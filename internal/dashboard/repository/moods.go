package repository

import (
	"sort"
	"time"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

type Moods struct {
	s *store.Store
}

func NewMoods(s *store.Store) *Moods {
	return &Moods{s: s}
}

// NewMoodLog carries the fields accepted on creation. Stress is optional and
// defaults to 10 - energy when nil.
type NewMoodLog struct {
	Date      string
	Mood      string
	MoodScore int
	Energy    int
	Note      string
	Stress    *int
}

// List returns all mood logs ordered ascending by date.
func (r *Moods) List() []dashboard.MoodLog {
	var out []dashboard.MoodLog
	r.s.View(func(d *dashboard.Data) {
		out = append(out, d.MoodLogs...)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Create upserts by date: any existing log for the same date is removed
// before the new one is appended, so the collection never holds two entries
// for one day. The new log always gets a fresh id.
func (r *Moods) Create(in NewMoodLog) (dashboard.MoodLog, error) {
	stress := 10 - in.Energy
	if in.Stress != nil {
		stress = *in.Stress
	}

	var created dashboard.MoodLog
	err := r.s.Update(func(d *dashboard.Data) error {
		kept := d.MoodLogs[:0]
		for _, l := range d.MoodLogs {
			if l.Date != in.Date {
				kept = append(kept, l)
			}
		}
		d.MoodLogs = kept

		created = dashboard.MoodLog{
			ID:        d.NextMoodID,
			Date:      in.Date,
			Mood:      in.Mood,
			MoodScore: in.MoodScore,
			Energy:    in.Energy,
			Note:      in.Note,
			Stress:    stress,
			CreatedAt: time.Now(),
		}
		d.MoodLogs = append(d.MoodLogs, created)
		d.NextMoodID++
		return nil
	})
	return created, err
}
