package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/services"
)

// GetLeaderboard GET /leaderboard?limit=N
func GetLeaderboard(c *gin.Context) {
	leaderboard, err := services.GetLeaderboard(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build leaderboard"})
		return
	}

	limit := 25
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > len(leaderboard) {
		limit = len(leaderboard)
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": leaderboard[:limit],
		"total":       len(leaderboard),
	})
}
