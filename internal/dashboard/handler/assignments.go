package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mrigeshkoyande/NeuroNest-AI/internal/dashboard/repository"
)

func (a *API) registerAssignments(rg *gin.RouterGroup) {
	rg.GET("/assignments", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.assignments.List())
	})

	rg.POST("/assignments", func(c *gin.Context) {
		var req struct {
			Title          string  `json:"title"`
			Subject        string  `json:"subject"`
			Deadline       string  `json:"deadline"`
			Priority       string  `json:"priority"`
			EstimatedHours float64 `json:"estimatedHours"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Title == "" || req.Deadline == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and deadline are required"})
			return
		}
		created, err := a.assignments.Create(repository.NewAssignment{
			Title:          req.Title,
			Subject:        req.Subject,
			Deadline:       req.Deadline,
			Priority:       req.Priority,
			EstimatedHours: req.EstimatedHours,
		})
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	rg.PATCH("/assignments/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		var req struct {
			Title          *string  `json:"title"`
			Subject        *string  `json:"subject"`
			Deadline       *string  `json:"deadline"`
			Priority       *string  `json:"priority"`
			Completed      *bool    `json:"completed"`
			Progress       *int     `json:"progress"`
			EstimatedHours *float64 `json:"estimatedHours"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated, err := a.assignments.Patch(id, repository.AssignmentPatch{
			Title:          req.Title,
			Subject:        req.Subject,
			Deadline:       req.Deadline,
			Priority:       req.Priority,
			Completed:      req.Completed,
			Progress:       req.Progress,
			EstimatedHours: req.EstimatedHours,
		})
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
			return
		}
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	rg.DELETE("/assignments/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		err = a.assignments.Delete(id)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
