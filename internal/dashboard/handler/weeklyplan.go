package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) registerWeeklyPlan(rg *gin.RouterGroup) {
	rg.GET("/weekly-plan", func(c *gin.Context) {
		plan := a.weeklyPlans.Get()
		if plan == nil {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, plan)
	})

	rg.POST("/weekly-plan", func(c *gin.Context) {
		var req struct {
			Plan   map[string]any `json:"plan"`
			Inputs map[string]any `json:"inputs"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Plan == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plan is required"})
			return
		}
		if err := a.weeklyPlans.Save(req.Plan, req.Inputs); err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
