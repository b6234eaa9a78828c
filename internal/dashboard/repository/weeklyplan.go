package repository

import (
	"time"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

type WeeklyPlans struct {
	s *store.Store
}

func NewWeeklyPlans(s *store.Store) *WeeklyPlans {
	return &WeeklyPlans{s: s}
}

// Get returns the stored plan, or nil when none has been saved yet.
func (r *WeeklyPlans) Get() *dashboard.WeeklyPlan {
	var out *dashboard.WeeklyPlan
	r.s.View(func(d *dashboard.Data) {
		if d.WeeklyPlan != nil {
			cp := *d.WeeklyPlan
			out = &cp
		}
	})
	return out
}

// Save overwrites the plan wholesale; there is no partial update.
func (r *WeeklyPlans) Save(plan, inputs map[string]any) error {
	if inputs == nil {
		inputs = map[string]any{}
	}
	return r.s.Update(func(d *dashboard.Data) error {
		d.WeeklyPlan = &dashboard.WeeklyPlan{
			Plan:        plan,
			Inputs:      inputs,
			GeneratedAt: time.Now(),
		}
		return nil
	})
}
