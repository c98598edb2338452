package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CelebrationActivity is the append-only celebration log. One row per badge
// transition from unearned to earned; the announcer bot polls this feed.
type CelebrationActivity struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Handle      string    `gorm:"index;not null" json:"handle"`
	BadgeID     string    `gorm:"index;not null" json:"badgeId"`
	Message     string    `json:"message"`
	MetricValue int       `json:"metricValue"`
	Announced   bool      `gorm:"default:false" json:"announced"` // board-worthy vs DM-only
	CreatedAt   time.Time `json:"createdAt"`
}

func (CelebrationActivity) TableName() string {
	return "celebration_activities"
}

func (ca *CelebrationActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if ca.ID == "" {
		ca.ID = uuid.New().String()
	}
	if ca.CreatedAt.IsZero() {
		ca.CreatedAt = time.Now()
	}
	return
}
