package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/pkg/logger"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

// LogCelebration appends one entry to the celebration feed. Feed writes are
// best-effort: a failed log must not roll back an award.
func LogCelebration(db *gorm.DB, handle string, badge models.Badge, metricValue int) {
	entry := models.CelebrationActivity{
		Handle:      utils.NormalizeHandle(handle),
		BadgeID:     badge.ID,
		MetricValue: metricValue,
		Announced:   badge.CelebratePublicly,
		Message: fmt.Sprintf("🎉 %s earned %s %s!",
			utils.DisplayHandle(utils.NormalizeHandle(handle)), badge.Name, badge.Emoji),
	}

	if err := db.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Str("handle", handle).Str("badge", badge.ID).
			Msg("Failed to log celebration")
	}
}
