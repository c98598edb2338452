package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/services"
	"github.com/brightseth/vibe-sub000/internal/store"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

type nextMilestone struct {
	BadgeID   string `json:"badgeId"`
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	DaysLeft  int    `json:"daysLeft"`
}

// GetUserProgress GET /users/:handle
// Unseen handles get a zero-valued summary rather than a 404; the legacy
// scripts treated every handle as implicitly existing and the dashboard
// depends on that.
func GetUserProgress(c *gin.Context) {
	handle := utils.NormalizeHandle(c.Param("handle"))
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Handle is required"})
		return
	}

	progressStore := store.NewProgressStore(database.DB)
	progress, err := progressStore.Get(handle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	var awards []models.UserBadge
	if err := database.DB.Preload("Badge").
		Where("handle = ?", handle).
		Order("unlocked_at asc").
		Find(&awards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badges"})
		return
	}

	totalPoints := 0
	earned := make(map[string]bool, len(awards))
	badges := make([]services.BadgeSummary, 0, len(awards))
	for _, award := range awards {
		totalPoints += award.Badge.Points
		earned[award.BadgeID] = true
		badges = append(badges, services.BadgeSummary{
			ID:     award.Badge.ID,
			Name:   award.Badge.Name,
			Emoji:  award.Badge.Emoji,
			Tier:   award.Badge.Tier,
			Points: award.Badge.Points,
		})
	}

	// Next unearned streak milestone
	var streakBadges []models.Badge
	database.DB.Where("metric = ?", models.MetricCurrentStreak).
		Order("threshold asc").Find(&streakBadges)

	var next *nextMilestone
	for _, b := range streakBadges {
		if !earned[b.ID] && b.Threshold > progress.CurrentStreak {
			next = &nextMilestone{
				BadgeID:   b.ID,
				Name:      b.Name,
				Threshold: b.Threshold,
				DaysLeft:  b.Threshold - progress.CurrentStreak,
			}
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"handle":        utils.DisplayHandle(handle),
		"currentStreak": progress.CurrentStreak,
		"bestStreak":    progress.BestStreak,
		"counters":      progress.Counters,
		"lastUpdated":   progress.LastUpdated,
		"badges":        badges,
		"totalBadges":   len(badges),
		"totalPoints":   totalPoints,
		"rankTitle":     services.RankTitle(totalPoints),
		"nextMilestone": next,
	})
}

// GetUserCelebrations GET /users/:handle/celebrations
func GetUserCelebrations(c *gin.Context) {
	handle := utils.NormalizeHandle(c.Param("handle"))
	if handle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Handle is required"})
		return
	}

	var celebrations []models.CelebrationActivity
	if err := database.DB.Where("handle = ?", handle).
		Order("created_at desc").Limit(50).
		Find(&celebrations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch celebrations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"celebrations": celebrations})
}

// ListUsers GET /users
func ListUsers(c *gin.Context) {
	progressStore := store.NewProgressStore(database.DB)
	records, err := progressStore.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CurrentStreak > records[j].CurrentStreak
	})

	c.JSON(http.StatusOK, gin.H{"users": records, "count": len(records)})
}
