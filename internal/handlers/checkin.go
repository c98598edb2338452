package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/services"
	"github.com/brightseth/vibe-sub000/pkg/errors"
)

type checkinRequest struct {
	Handle  string         `json:"handle" binding:"required"`
	Metrics map[string]int `json:"metrics" binding:"required"`
}

// Checkin POST /checkins
// The streaks-agent reports a user's current metrics; the evaluator awards
// whatever milestones the update newly satisfies and the response carries
// the rendered celebration for the announcer.
func Checkin(c *gin.Context) {
	var input checkinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	evaluator := services.NewEvaluator(database.DB)
	newBadges, err := evaluator.Evaluate(input.Handle, input.Metrics)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Evaluation failed"})
		return
	}

	progress, err := evaluator.Store().Get(input.Handle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Evaluation failed"})
		return
	}

	celebration := services.FormatCelebration(
		input.Handle, newBadges, progress.CurrentStreak, time.Now().UnixNano())

	c.JSON(http.StatusOK, gin.H{
		"handle":      progress.Handle,
		"newBadges":   newBadges,
		"celebration": celebration,
		"progress":    progress,
	})
}
