package migrations

import (
	"gorm.io/gorm"
)

// Migration002BackfillBestStreaks repairs rows where a legacy import left
// best_streak below current_streak. The store enforces the invariant on every
// write; this catches data that predates it.
func Migration002BackfillBestStreaks() Migration {
	return Migration{
		ID:   "002_backfill_best_streaks",
		Name: "Backfill best_streak where it trails current_streak",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
				UPDATE user_progresses
				SET best_streak = current_streak
				WHERE best_streak < current_streak
			`).Error
		},
		Down: func(db *gorm.DB) error {
			// Data repair, nothing to undo
			return nil
		},
	}
}
