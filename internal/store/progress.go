// Package store is the user progress store: per-handle streak state plus the
// award ledger. All mutations go through here so the best-streak invariant
// and award idempotence hold no matter who calls.
package store

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

type ProgressStore struct {
	db *gorm.DB
}

func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{db: db}
}

// Get returns the progress record for a handle, or a zero-valued record if
// the handle has never been seen. It never fails on a missing row.
func (s *ProgressStore) Get(handle string) (models.UserProgress, error) {
	handle = utils.NormalizeHandle(handle)

	var progress models.UserProgress
	err := s.db.First(&progress, "handle = ?", handle).Error
	if err == gorm.ErrRecordNotFound {
		return models.UserProgress{Handle: handle, Counters: models.Counters{}}, nil
	}
	if err != nil {
		return models.UserProgress{}, err
	}
	if progress.Counters == nil {
		progress.Counters = models.Counters{}
	}
	return progress, nil
}

// Save upserts a progress record, enforcing best_streak >= current_streak.
func (s *ProgressStore) Save(progress *models.UserProgress) error {
	progress.Handle = utils.NormalizeHandle(progress.Handle)
	if progress.BestStreak < progress.CurrentStreak {
		progress.BestStreak = progress.CurrentStreak
	}
	if progress.Counters == nil {
		progress.Counters = models.Counters{}
	}
	if progress.LastUpdated.IsZero() {
		progress.LastUpdated = time.Now()
	}

	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "handle"}},
		UpdateAll: true,
	}).Create(progress).Error
}

// MarkAwarded records an award. Returns false (no error) when the badge was
// already held: the composite primary key on user_badges makes a repeat
// award a conflict we deliberately do nothing about.
func (s *ProgressStore) MarkAwarded(handle, badgeID string, metricValue int) (bool, error) {
	award := models.UserBadge{
		Handle:      utils.NormalizeHandle(handle),
		BadgeID:     badgeID,
		MetricValue: metricValue,
		UnlockedAt:  time.Now(),
	}

	result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&award)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// EarnedIDs returns the set of badge ids a handle already holds.
func (s *ProgressStore) EarnedIDs(handle string) (map[string]bool, error) {
	var ids []string
	err := s.db.Model(&models.UserBadge{}).
		Where("handle = ?", utils.NormalizeHandle(handle)).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, err
	}

	earned := make(map[string]bool, len(ids))
	for _, id := range ids {
		earned[id] = true
	}
	return earned, nil
}

// All returns every progress record, for the leaderboard and stats.
func (s *ProgressStore) All() ([]models.UserProgress, error) {
	var records []models.UserProgress
	err := s.db.Order("handle asc").Find(&records).Error
	return records, err
}
