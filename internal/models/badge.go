package models

import "time"

type BadgeTier string

const (
	TierBronze   BadgeTier = "bronze"
	TierSilver   BadgeTier = "silver"
	TierGold     BadgeTier = "gold"
	TierPlatinum BadgeTier = "platinum"
	TierDiamond  BadgeTier = "diamond"
	TierSpecial  BadgeTier = "special"
)

// Metric names a badge can track. Counters is open-ended, so handlers accept
// arbitrary counter names too; these are the ones the catalog ships with.
const (
	MetricCurrentStreak = "current_streak"
	MetricShips         = "ships_count"
	MetricGames         = "games_count"
	MetricDMs           = "dm_count"
	MetricRestarts      = "restarts"
)

// Badge is one catalog definition. Static after seeding, never mutated.
type Badge struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	Tier        BadgeTier `gorm:"type:text;default:'bronze'" json:"tier"`
	Points      int       `json:"points"` // leaderboard weight

	// Standard badges compare Metric against Threshold. Special badges
	// (SpecialCondition != "") run a named predicate from the catalog
	// registry instead.
	Metric           string `json:"metric"`
	Threshold        int    `json:"threshold"`
	SpecialCondition string `gorm:"type:text" json:"specialCondition,omitempty"`

	CelebratePublicly bool `gorm:"default:false" json:"celebratePublicly"`

	// One or more template variants; {handle} and {streak} are substituted.
	CelebrationMessages MessageList `gorm:"type:text" json:"celebrationMessages"`
}

// UserBadge records one award. The composite primary key is the
// at-most-one-celebration guarantee: a second award of the same badge to the
// same handle is a conflict, not a duplicate row.
type UserBadge struct {
	Handle      string    `gorm:"primaryKey;type:text" json:"handle"`
	BadgeID     string    `gorm:"primaryKey;type:text" json:"badgeId"`
	MetricValue int       `gorm:"default:0" json:"metricValue"` // metric value at award time
	UnlockedAt  time.Time `json:"unlockedAt"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}
