package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard/repository"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/store"
)

// API wires the resource repositories to their routes. It holds no state of
// its own; every handler reads and mutates through the shared store.
type API struct {
	assignments *repository.Assignments
	moods       *repository.Moods
	habits      *repository.Habits
	chat        *repository.Chat
	students    *repository.Students
	weeklyPlans *repository.WeeklyPlans
}

func New(s *store.Store) *API {
	return &API{
		assignments: repository.NewAssignments(s),
		moods:       repository.NewMoods(s),
		habits:      repository.NewHabits(s),
		chat:        repository.NewChat(s),
		students:    repository.NewStudents(s),
		weeklyPlans: repository.NewWeeklyPlans(s),
	}
}

// Register mounts every resource under /api, plus the health check and the
// 404 fallback for unmatched routes.
func (a *API) Register(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Format(time.RFC3339)})
	})

	a.registerAssignments(api)
	a.registerMoods(api)
	a.registerHabits(api)
	a.registerChat(api)
	a.registerStudent(api)
	a.registerWeeklyPlan(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
}

// persistFailed reports a storage write failure. The in-memory mutation has
// already been applied at this point; only the disk copy is stale.
func persistFailed(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist data"})
}
