package legacy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/seeds"
	"github.com/brightseth/vibe-sub000/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Badge{},
		&models.UserProgress{},
		&models.UserBadge{},
		&models.CelebrationActivity{},
	))
	assert.NoError(t, seeds.SeedBadges(db))
	return db
}

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportStreaks_MergesAndNormalizesHandles(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	path := writeTemp(t, "memory.json", `{
		"streaks": {
			"@Alice": {"current": 4, "best": 9},
			"bob":    {"current": 2, "best": 2}
		}
	}`)

	n, err := im.ImportStreaks(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	s := store.NewProgressStore(db)
	alice, err := s.Get("alice")
	assert.NoError(t, err)
	assert.Equal(t, 4, alice.CurrentStreak)
	assert.Equal(t, 9, alice.BestStreak)

	// Re-running never shrinks anything
	lower := writeTemp(t, "memory2.json", `{"streaks": {"@alice": {"current": 1, "best": 3}}}`)
	_, err = im.ImportStreaks(lower)
	assert.NoError(t, err)

	alice, err = s.Get("alice")
	assert.NoError(t, err)
	assert.Equal(t, 4, alice.CurrentStreak)
	assert.Equal(t, 9, alice.BestStreak)
}

func TestImportStreaks_MissingFileIsAWarningNotAnError(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	n, err := im.ImportStreaks(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImportStreaks_CorruptFileIsAWarningNotAnError(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	path := writeTemp(t, "memory.json", `{"streaks": not json`)
	n, err := im.ImportStreaks(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImportEngineBadges_IdempotentReplay(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	path := writeTemp(t, "badges.json", `{
		"user_badges": {
			"@alice": ["first_day", "early_bird"],
			"@bob":   ["first_day"]
		}
	}`)

	n, err := im.ImportEngineBadges(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	// Replay awards nothing new
	n, err = im.ImportEngineBadges(path)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int64
	db.Model(&models.UserBadge{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestImportEngineBadges_UnknownIDsAreReported(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	path := writeTemp(t, "badges.json", `{
		"user_badges": {
			"@alice": ["first_day", "hyperspace_hero"]
		}
	}`)

	n, err := im.ImportEngineBadges(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hyperspace_hero")
	assert.Equal(t, 1, n) // the known badge still landed
}

func TestImportCelebrationHistory_MapsMilestonesToBadges(t *testing.T) {
	db := setupTestDB(t)
	im := NewImporter(db)

	path := writeTemp(t, "history.json", `{
		"celebrations": {
			"@alice": [
				{"milestone": 7, "current_streak": 8, "celebrated_at": "2026-01-08T10:00:00"},
				{"milestone": 5, "current_streak": 5, "celebrated_at": "2026-01-06T10:00:00"}
			]
		}
	}`)

	// Milestone 7 maps to week_warrior; 5 has no badge and is skipped
	n, err := im.ImportCelebrationHistory(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	var award models.UserBadge
	assert.NoError(t, db.First(&award, "handle = ? AND badge_id = ?", "alice", "week_warrior").Error)
	assert.Equal(t, 8, award.MetricValue)
}
