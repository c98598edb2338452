package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/models"
)

// setupTestDB initializes an in-memory SQLite DB for testing
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
	return db
}

func TestGet_UnseenHandleReturnsZeroRecord(t *testing.T) {
	s := NewProgressStore(setupTestDB(t))

	progress, err := s.Get("@ghost")
	assert.NoError(t, err)
	assert.Equal(t, "ghost", progress.Handle)
	assert.Equal(t, 0, progress.CurrentStreak)
	assert.Equal(t, 0, progress.BestStreak)
	assert.NotNil(t, progress.Counters)
}

func TestSave_EnforcesBestStreakInvariant(t *testing.T) {
	s := NewProgressStore(setupTestDB(t))

	progress := models.UserProgress{Handle: "alice", CurrentStreak: 9, BestStreak: 3}
	assert.NoError(t, s.Save(&progress))

	loaded, err := s.Get("alice")
	assert.NoError(t, err)
	assert.Equal(t, 9, loaded.CurrentStreak)
	assert.Equal(t, 9, loaded.BestStreak)
}

func TestSave_UpsertsExistingHandle(t *testing.T) {
	s := NewProgressStore(setupTestDB(t))

	first := models.UserProgress{Handle: "bob", CurrentStreak: 2, BestStreak: 2}
	assert.NoError(t, s.Save(&first))

	second := models.UserProgress{Handle: "@Bob", CurrentStreak: 5, BestStreak: 5}
	assert.NoError(t, s.Save(&second))

	loaded, err := s.Get("bob")
	assert.NoError(t, err)
	assert.Equal(t, 5, loaded.CurrentStreak)

	records, err := s.All()
	assert.NoError(t, err)
	assert.Len(t, records, 1) // @Bob and bob are the same person
}

func TestMarkAwarded_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := NewProgressStore(db)
	db.Create(&models.Badge{ID: "first_day", Name: "First Day", Metric: models.MetricCurrentStreak, Threshold: 1})

	awarded, err := s.MarkAwarded("alice", "first_day", 1)
	assert.NoError(t, err)
	assert.True(t, awarded)

	// Second award of the same badge is a no-op, not an error
	awarded, err = s.MarkAwarded("@alice", "first_day", 3)
	assert.NoError(t, err)
	assert.False(t, awarded)

	var count int64
	db.Model(&models.UserBadge{}).Where("handle = ? AND badge_id = ?", "alice", "first_day").Count(&count)
	assert.Equal(t, int64(1), count)

	// The original award's metric value survives the replay
	var award models.UserBadge
	db.First(&award, "handle = ? AND badge_id = ?", "alice", "first_day")
	assert.Equal(t, 1, award.MetricValue)
}

func TestEarnedIDs(t *testing.T) {
	db := setupTestDB(t)
	s := NewProgressStore(db)
	db.Create(&models.Badge{ID: "first_day", Name: "First Day", Metric: models.MetricCurrentStreak, Threshold: 1})
	db.Create(&models.Badge{ID: "early_bird", Name: "Early Bird", Metric: models.MetricCurrentStreak, Threshold: 3})

	_, err := s.MarkAwarded("alice", "first_day", 1)
	assert.NoError(t, err)
	_, err = s.MarkAwarded("alice", "early_bird", 3)
	assert.NoError(t, err)

	earned, err := s.EarnedIDs("@Alice")
	assert.NoError(t, err)
	assert.True(t, earned["first_day"])
	assert.True(t, earned["early_bird"])
	assert.False(t, earned["week_warrior"])
}
