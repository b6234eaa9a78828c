package repository

import (
	"sort"
	"time"

	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

// Assignments is a stateless repository over the shared document store.
type Assignments struct {
	s *store.Store
}

func NewAssignments(s *store.Store) *Assignments {
	return &Assignments{s: s}
}

// NewAssignment carries the fields accepted on creation. Zero values for
// Subject, Priority and EstimatedHours are replaced with defaults.
type NewAssignment struct {
	Title          string
	Subject        string
	Deadline       string
	Priority       string
	EstimatedHours float64
}

// AssignmentPatch holds optional replacement values; nil fields are left
// unchanged (true partial-update semantics).
type AssignmentPatch struct {
	Title          *string
	Subject        *string
	Deadline       *string
	Priority       *string
	Completed      *bool
	Progress       *int
	EstimatedHours *float64
}

// List returns all assignments, incomplete before completed, then by
// ascending deadline within each group. The sort is stable so equal keys keep
// insertion order.
func (r *Assignments) List() []dashboard.Assignment {
	var out []dashboard.Assignment
	r.s.View(func(d *dashboard.Data) {
		out = append(out, d.Assignments...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		// ISO dates compare chronologically as strings
		return out[i].Deadline < out[j].Deadline
	})
	return out
}

// Create allocates the next assignment id and appends the new record. Ids are
// strictly increasing and never reused, even after deletions.
func (r *Assignments) Create(in NewAssignment) (dashboard.Assignment, error) {
	if in.Subject == "" {
		in.Subject = "Other"
	}
	if in.Priority == "" {
		in.Priority = "medium"
	}
	if in.EstimatedHours == 0 {
		in.EstimatedHours = 2
	}

	var created dashboard.Assignment
	err := r.s.Update(func(d *dashboard.Data) error {
		created = dashboard.Assignment{
			ID:             d.NextAssignmentID,
			Title:          in.Title,
			Subject:        in.Subject,
			Deadline:       in.Deadline,
			Priority:       in.Priority,
			Completed:      false,
			Progress:       0,
			EstimatedHours: in.EstimatedHours,
			CreatedAt:      time.Now(),
		}
		d.Assignments = append(d.Assignments, created)
		d.NextAssignmentID++
		return nil
	})
	return created, err
}

// Patch applies only the non-nil fields of p to the assignment with the given
// id and returns the updated record.
func (r *Assignments) Patch(id int, p AssignmentPatch) (dashboard.Assignment, error) {
	var updated dashboard.Assignment
	err := r.s.Update(func(d *dashboard.Data) error {
		for i := range d.Assignments {
			a := &d.Assignments[i]
			if a.ID != id {
				continue
			}
			if p.Title != nil {
				a.Title = *p.Title
			}
			if p.Subject != nil {
				a.Subject = *p.Subject
			}
			if p.Deadline != nil {
				a.Deadline = *p.Deadline
			}
			if p.Priority != nil {
				a.Priority = *p.Priority
			}
			if p.Completed != nil {
				a.Completed = *p.Completed
			}
			if p.Progress != nil {
				a.Progress = *p.Progress
			}
			if p.EstimatedHours != nil {
				a.EstimatedHours = *p.EstimatedHours
			}
			updated = *a
			return nil
		}
		return ErrNotFound
	})
	return updated, err
}

func (r *Assignments) Delete(id int) error {
	return r.s.Update(func(d *dashboard.Data) error {
		for i := range d.Assignments {
			if d.Assignments[i].ID == id {
				d.Assignments = append(d.Assignments[:i], d.Assignments[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
