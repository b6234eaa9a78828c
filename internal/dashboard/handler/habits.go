package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard/repository"
)

func (a *API) registerHabits(rg *gin.RouterGroup) {
	rg.GET("/habits", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.habits.List())
	})

	rg.PATCH("/habits/:id/log", func(c *gin.Context) {
		var req struct {
			Date  string   `json:"date"`
			Value *float64 `json:"value"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Date == "" || req.Value == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date and value are required"})
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		err = a.habits.LogDay(id, req.Date, *req.Value)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "habitId": id, "date": req.Date, "value": *req.Value})
	})
}
