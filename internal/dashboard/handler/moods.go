package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard/repository"
)

func (a *API) registerMoods(rg *gin.RouterGroup) {
	rg.GET("/mood", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.moods.List())
	})

	// one log per day: posting for an existing date replaces that entry
	rg.POST("/mood", func(c *gin.Context) {
		var req struct {
			Date      string `json:"date"`
			Mood      string `json:"mood"`
			MoodScore *int   `json:"moodScore"`
			Energy    *int   `json:"energy"`
			Note      string `json:"note"`
			Stress    *int   `json:"stress"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Date == "" || req.Mood == "" || req.MoodScore == nil || req.Energy == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date, mood, moodScore, energy are required"})
			return
		}
		created, err := a.moods.Create(repository.NewMoodLog{
			Date:      req.Date,
			Mood:      req.Mood,
			MoodScore: *req.MoodScore,
			Energy:    *req.Energy,
			Note:      req.Note,
			Stress:    req.Stress,
		})
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusCreated, created)
	})
}
