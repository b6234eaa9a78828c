package repository

import (
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

type Students struct {
	s *store.Store
}

func NewStudents(s *store.Store) *Students {
	return &Students{s: s}
}

// StudentPatch holds the four patchable stat fields; nil fields are left
// unchanged.
type StudentPatch struct {
	ProductivityScore *int
	StreakDays        *int
	FocusHoursToday   *float64
	TotalTasksDone    *int
}

func (r *Students) Get() dashboard.Student {
	var out dashboard.Student
	r.s.View(func(d *dashboard.Data) {
		out = d.Student
	})
	return out
}

func (r *Students) Patch(p StudentPatch) (dashboard.Student, error) {
	var updated dashboard.Student
	err := r.s.Update(func(d *dashboard.Data) error {
		if p.ProductivityScore != nil {
			d.Student.ProductivityScore = *p.ProductivityScore
		}
		if p.StreakDays != nil {
			d.Student.StreakDays = *p.StreakDays
		}
		if p.FocusHoursToday != nil {
			d.Student.FocusHoursToday = *p.FocusHoursToday
		}
		if p.TotalTasksDone != nil {
			d.Student.TotalTasksDone = *p.TotalTasksDone
		}
		updated = d.Student
		return nil
	})
	return updated, err
}
