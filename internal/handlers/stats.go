package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
)

// GetStats GET /stats
// The numbers the old dashboards printed: community size, awards issued,
// tier distribution, streak aggregates.
func GetStats(c *gin.Context) {
	var usersTracked int64
	database.DB.Model(&models.UserProgress{}).Count(&usersTracked)

	var badgesAwarded int64
	database.DB.Model(&models.UserBadge{}).Count(&badgesAwarded)

	var celebrations int64
	database.DB.Model(&models.CelebrationActivity{}).Count(&celebrations)

	var activeToday int64
	database.DB.Model(&models.UserProgress{}).
		Where("last_updated >= ?", time.Now().Add(-24*time.Hour)).
		Count(&activeToday)

	type tierRow struct {
		Tier  models.BadgeTier `json:"tier"`
		Count int64            `json:"count"`
	}
	var tiers []tierRow
	database.DB.Model(&models.UserBadge{}).
		Select("badges.tier as tier, count(*) as count").
		Joins("JOIN badges ON badges.id = user_badges.badge_id").
		Group("badges.tier").
		Scan(&tiers)

	type streakRow struct {
		Longest float64
		Average float64
	}
	var streaks streakRow
	database.DB.Model(&models.UserProgress{}).
		Select("COALESCE(MAX(current_streak), 0) as longest, COALESCE(AVG(current_streak), 0) as average").
		Scan(&streaks)

	c.JSON(http.StatusOK, gin.H{
		"usersTracked":        usersTracked,
		"badgesAwarded":       badgesAwarded,
		"celebrations":        celebrations,
		"activeToday":         activeToday,
		"tierDistribution":    tiers,
		"longestActiveStreak": streaks.Longest,
		"averageStreak":       streaks.Average,
	})
}

// GetActivityFeed GET /activity
// Recent public celebrations for the workshop board.
func GetActivityFeed(c *gin.Context) {
	var feed []models.CelebrationActivity
	if err := database.DB.Where("announced = ?", true).
		Order("created_at desc").Limit(50).
		Find(&feed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": feed})
}
