package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStudentGet(t *testing.T) {
	r := NewStudents(newTestStore(t))
	s := r.Get()
	require.Equal(t, "Soham Rathi", s.Name)
	require.Equal(t, "MIT", s.University)
}

func TestStudentPatchIsPartial(t *testing.T) {
	r := NewStudents(newTestStore(t))

	streak := 13
	focus := 6.5
	updated, err := r.Patch(StudentPatch{StreakDays: &streak, FocusHoursToday: &focus})
	require.NoError(t, err)
	require.Equal(t, 13, updated.StreakDays)
	require.Equal(t, 6.5, updated.FocusHoursToday)

	// unsupplied fields keep their seeded values
	require.Equal(t, 78, updated.ProductivityScore)
	require.Equal(t, 127, updated.TotalTasksDone)
	require.Equal(t, "Soham Rathi", updated.Name)
}
