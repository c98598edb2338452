package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddHotPathIndexes adds indexes for the read-heavy queries:
// leaderboard aggregation over user_badges, badge holder listings, and the
// public activity feed filter.
//
// All indexes are idempotent (IF NOT EXISTS) for safe re-runs.
func Migration001AddHotPathIndexes() Migration {
	return Migration{
		ID:   "001_add_hot_path_indexes",
		Name: "Add indexes for leaderboard and activity feed queries",
		Up: func(db *gorm.DB) error {
			// Optimizes: holders of a badge ordered by award time
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_user_badges_badge_unlocked
				ON user_badges (badge_id, unlocked_at)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Optimizes: WHERE announced = true ORDER BY created_at DESC
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_celebration_activities_feed
				ON celebration_activities (announced, created_at DESC)
			`
			return db.Exec(idx2).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_celebration_activities_feed`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_user_badges_badge_unlocked`).Error
		},
	}
}
