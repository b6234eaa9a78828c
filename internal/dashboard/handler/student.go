package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard/repository"
)

func (a *API) registerStudent(rg *gin.RouterGroup) {
	rg.GET("/student", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.students.Get())
	})

	rg.PATCH("/student", func(c *gin.Context) {
		var req struct {
			ProductivityScore *int     `json:"productivityScore"`
			StreakDays        *int     `json:"streakDays"`
			FocusHoursToday   *float64 `json:"focusHoursToday"`
			TotalTasksDone    *int     `json:"totalTasksDone"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := a.students.Patch(repository.StudentPatch{
			ProductivityScore: req.ProductivityScore,
			StreakDays:        req.StreakDays,
			FocusHoursToday:   req.FocusHoursToday,
			TotalTasksDone:    req.TotalTasksDone,
		})
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, updated)
	})
}
