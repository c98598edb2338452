package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/services"
	"github.com/brightseth/vibe-sub000/pkg/errors"
)

type awardRequest struct {
	Handle string `json:"handle" binding:"required"`
}

// AwardBadge POST /admin/badges/:id/award
// Manual grant for badges whose condition can't be derived from metrics
// (community spirit calls, one-off event prizes). Unknown badge ids are a
// 404, not a silent skip.
func AwardBadge(c *gin.Context) {
	var input awardRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	evaluator := services.NewEvaluator(database.DB)
	badge, awarded, err := evaluator.Award(input.Handle, c.Param("id"))
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			c.JSON(appErr.Code, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Award failed"})
		return
	}

	if !awarded {
		c.JSON(http.StatusOK, gin.H{
			"awarded": false,
			"message": "User already holds this badge",
			"badge":   badge,
		})
		return
	}

	progress, err := evaluator.Store().Get(input.Handle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Award failed"})
		return
	}
	celebration := services.FormatCelebration(
		input.Handle, []models.Badge{*badge}, progress.CurrentStreak, time.Now().UnixNano())

	c.JSON(http.StatusOK, gin.H{
		"awarded":     true,
		"badge":       badge,
		"celebration": celebration,
	})
}
