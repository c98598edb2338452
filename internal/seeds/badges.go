package seeds

import (
	"log"

	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/catalog"
	"github.com/brightseth/vibe-sub000/internal/models"
)

// DefaultBadges is the canonical /vibe workshop catalog. Streak milestones
// of a week or more celebrate on the board; smaller ones stay in DMs.
func DefaultBadges() []models.Badge {
	return []models.Badge{
		{
			ID:          "first_day",
			Name:        "First Day",
			Description: "Started your workshop journey!",
			Emoji:       "🌱",
			Tier:        models.TierBronze,
			Points:      10,
			Metric:      models.MetricCurrentStreak,
			Threshold:   1,
			CelebrationMessages: models.MessageList{
				"🌱 Welcome aboard, {handle}! Day one is where every streak begins!",
				"🌱 {handle} planted the seed - your journey starts today!",
			},
		},
		{
			ID:          "early_bird",
			Name:        "Early Bird",
			Description: "Maintained activity for 3 days straight!",
			Emoji:       "🌅",
			Tier:        models.TierBronze,
			Points:      25,
			Metric:      models.MetricCurrentStreak,
			Threshold:   3,
			CelebrationMessages: models.MessageList{
				"🌅 Three days strong, {handle}! You're building momentum!",
			},
		},
		{
			ID:                "week_warrior",
			Name:              "Week Warrior",
			Description:       "Achieved a full week streak!",
			Emoji:             "💪",
			Tier:              models.TierSilver,
			Points:            50,
			Metric:            models.MetricCurrentStreak,
			Threshold:         7,
			CelebratePublicly: true,
			CelebrationMessages: models.MessageList{
				"💪 One week strong, {handle}! You're committed!",
				"💪 {handle} just conquered a full week - {streak} days and counting!",
			},
		},
		{
			ID:                "consistency_champion",
			Name:              "Consistency Champion",
			Description:       "Maintained a 14-day streak!",
			Emoji:             "🔥",
			Tier:              models.TierGold,
			Points:            100,
			Metric:            models.MetricCurrentStreak,
			Threshold:         14,
			CelebratePublicly: true,
			CelebrationMessages: models.MessageList{
				"🔥 Two weeks, {handle}! Your dedication is inspiring!",
			},
		},
		{
			ID:                "monthly_legend",
			Name:              "Monthly Legend",
			Description:       "Reached the legendary 30-day streak!",
			Emoji:             "🏆",
			Tier:              models.TierPlatinum,
			Points:            250,
			Metric:            models.MetricCurrentStreak,
			Threshold:         30,
			CelebratePublicly: true,
			CelebrationMessages: models.MessageList{
				"🏆 Monthly legend! {handle} hit 30 days of consistency!",
			},
		},
		{
			ID:                "century_club",
			Name:              "Century Club",
			Description:       "Achieved the ultimate 100-day streak!",
			Emoji:             "👑",
			Tier:              models.TierDiamond,
			Points:            1000,
			Metric:            models.MetricCurrentStreak,
			Threshold:         100,
			CelebratePublicly: true,
			CelebrationMessages: models.MessageList{
				"👑 Century club! {handle} is now workshop royalty!",
			},
		},
		{
			ID:          "first_ship",
			Name:        "First Ship",
			Description: "Shared your first creation with the workshop!",
			Emoji:       "🚢",
			Tier:        models.TierBronze,
			Points:      30,
			Metric:      models.MetricShips,
			Threshold:   1,
			CelebrationMessages: models.MessageList{
				"🚢 {handle} shipped! First creation shared with the workshop!",
			},
		},
		{
			ID:          "game_master",
			Name:        "Game Master",
			Description: "Created or participated in workshop games!",
			Emoji:       "🎮",
			Tier:        models.TierGold,
			Points:      75,
			Metric:      models.MetricGames,
			Threshold:   1,
			CelebrationMessages: models.MessageList{
				"🎮 Game on, {handle}! You joined the workshop games!",
			},
		},
		{
			ID:          "community_builder",
			Name:        "Community Builder",
			Description: "Helped others and fostered positive workshop vibes!",
			Emoji:       "🌟",
			Tier:        models.TierSpecial,
			Points:      100,
			Metric:      models.MetricDMs,
			Threshold:   10,
			CelebrationMessages: models.MessageList{
				"🌟 {handle} keeps the good vibes flowing - true community builder!",
			},
		},
		{
			ID:                "comeback_champion",
			Name:              "Comeback Champion",
			Description:       "Rebuilt a streak longer than your previous best!",
			Emoji:             "🔄",
			Tier:              models.TierSpecial,
			Points:            100,
			SpecialCondition:  "comeback",
			CelebratePublicly: true,
			CelebrationMessages: models.MessageList{
				"🔄 Comeback Champion! {handle} turned setback into comeback - inspiring!",
			},
		},
	}
}

// SeedBadges validates and inserts the default catalog, skipping badges
// that already exist.
func SeedBadges(db *gorm.DB) error {
	log.Println("🎖️ Seeding System Badges...")

	badges := DefaultBadges()
	if err := catalog.Validate(badges); err != nil {
		return err
	}

	for _, b := range badges {
		var existing models.Badge
		if err := db.Where("id = ?", b.ID).First(&existing).Error; err == nil {
			log.Printf("   ℹ️ Badge already exists: %s", b.Name)
			continue
		}

		if err := db.Create(&b).Error; err != nil {
			log.Printf("   ❌ Failed to create badge %s: %v", b.Name, err)
			return err
		}
		log.Printf("   🎖️ Badge Defined: %s", b.Name)
	}
	return nil
}
