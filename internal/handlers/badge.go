package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
)

// ListBadges GET /badges
func ListBadges(c *gin.Context) {
	var badges []models.Badge
	if err := database.DB.Order("threshold asc, id asc").Find(&badges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badge catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetBadge GET /badges/:id
func GetBadge(c *gin.Context) {
	var badge models.Badge
	if err := database.DB.First(&badge, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Badge not found in catalog"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch badge"})
		return
	}

	// How many users hold it, for the rarity display
	var holders int64
	database.DB.Model(&models.UserBadge{}).Where("badge_id = ?", badge.ID).Count(&holders)

	c.JSON(http.StatusOK, gin.H{"badge": badge, "holders": holders})
}
