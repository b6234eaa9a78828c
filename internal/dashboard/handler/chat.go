package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) registerChat(rg *gin.RouterGroup) {
	rg.GET("/chat", func(c *gin.Context) {
		c.JSON(http.StatusOK, a.chat.List())
	})

	rg.POST("/chat", func(c *gin.Context) {
		var req struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Time    string `json:"time"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Role == "" || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role and content are required"})
			return
		}
		created, err := a.chat.Create(req.Role, req.Content, req.Time)
		if err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusCreated, created)
	})

	// clear history: keeps only the seeded welcome message
	rg.DELETE("/chat", func(c *gin.Context) {
		if err := a.chat.Clear(); err != nil {
			persistFailed(c)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
}
