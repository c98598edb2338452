// Package legacy reads the JSON files the old standalone scripts fought
// over (badges.json, celebration_history.json, the streaks-agent memory
// file) and merges them into the database once. Every layout is a migration
// source to be read and discarded, not a schema to keep alive.
package legacy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/store"
	"github.com/brightseth/vibe-sub000/pkg/logger"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

// badges.json as written by the badge engine scripts.
type engineFile struct {
	UserBadges map[string][]string `json:"user_badges"`
}

// The streaks-agent memory file.
type streaksMemory struct {
	Streaks map[string]streakEntry `json:"streaks"`
}

type streakEntry struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// celebration_history.json from the milestone celebration scripts.
type historyFile struct {
	Celebrations map[string][]historyEntry `json:"celebrations"`
}

type historyEntry struct {
	Milestone     int    `json:"milestone"`
	CurrentStreak int    `json:"current_streak"`
	CelebratedAt  string `json:"celebrated_at"`
}

type Importer struct {
	db    *gorm.DB
	store *store.ProgressStore
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db, store: store.NewProgressStore(db)}
}

// loadFile reads and decodes a legacy file. Missing or corrupt files fall
// back to empty data with a warning; the old scripts did the same and an
// import must not die on one bad file.
func loadFile(path string, dest interface{}) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Str("file", path).Err(err).Msg("Legacy file unavailable, skipping")
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn().Str("file", path).Err(err).Msg("Legacy file corrupt, skipping")
		return false
	}
	return true
}

// ImportStreaks merges the streaks-agent memory into user progress. Existing
// values win when higher: re-running the import never shrinks a streak.
func (im *Importer) ImportStreaks(path string) (int, error) {
	var memory streaksMemory
	if !loadFile(path, &memory) {
		return 0, nil
	}

	imported := 0
	for rawHandle, entry := range memory.Streaks {
		handle := utils.NormalizeHandle(rawHandle)
		if handle == "" || entry.Current < 0 || entry.Best < 0 {
			logger.Warn().Str("handle", rawHandle).Msg("Skipping malformed streak entry")
			continue
		}

		progress, err := im.store.Get(handle)
		if err != nil {
			return imported, err
		}
		if entry.Current > progress.CurrentStreak {
			progress.CurrentStreak = entry.Current
		}
		if entry.Best > progress.BestStreak {
			progress.BestStreak = entry.Best
		}
		if err := im.store.Save(&progress); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ImportEngineBadges replays the user_badges map from badges.json. Badge ids
// missing from the catalog are collected and reported as an error after the
// known ones are imported; the old scripts dropped them silently.
func (im *Importer) ImportEngineBadges(path string) (int, error) {
	var file engineFile
	if !loadFile(path, &file) {
		return 0, nil
	}

	known := make(map[string]bool)
	var definitions []models.Badge
	if err := im.db.Find(&definitions).Error; err != nil {
		return 0, err
	}
	for _, b := range definitions {
		known[b.ID] = true
	}

	imported := 0
	unknown := make(map[string]bool)
	for rawHandle, badgeIDs := range file.UserBadges {
		handle := utils.NormalizeHandle(rawHandle)
		if handle == "" {
			continue
		}
		for _, badgeID := range badgeIDs {
			if _, ok := known[badgeID]; !ok {
				unknown[badgeID] = true
				continue
			}
			progress, err := im.store.Get(handle)
			if err != nil {
				return imported, err
			}
			// Historic awards were already celebrated by the old scripts,
			// so no feed entry is written here.
			awarded, err := im.store.MarkAwarded(handle, badgeID, progress.CurrentStreak)
			if err != nil {
				return imported, err
			}
			if awarded {
				if err := im.store.Save(&progress); err != nil {
					return imported, err
				}
				imported++
			}
		}
	}

	if len(unknown) > 0 {
		ids := make([]string, 0, len(unknown))
		for id := range unknown {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return imported, fmt.Errorf("legacy badges reference unknown ids: %v", ids)
	}
	return imported, nil
}

// ImportCelebrationHistory maps milestone entries from the celebration
// history file onto the streak badges with matching thresholds.
func (im *Importer) ImportCelebrationHistory(path string) (int, error) {
	var file historyFile
	if !loadFile(path, &file) {
		return 0, nil
	}

	byThreshold := make(map[int]models.Badge)
	var streakBadges []models.Badge
	if err := im.db.Where("metric = ?", models.MetricCurrentStreak).Find(&streakBadges).Error; err != nil {
		return 0, err
	}
	for _, b := range streakBadges {
		byThreshold[b.Threshold] = b
	}

	imported := 0
	for rawHandle, entries := range file.Celebrations {
		handle := utils.NormalizeHandle(rawHandle)
		if handle == "" {
			continue
		}
		for _, entry := range entries {
			badge, ok := byThreshold[entry.Milestone]
			if !ok {
				logger.Warn().Str("handle", handle).Int("milestone", entry.Milestone).
					Msg("No catalog badge for legacy milestone, skipping")
				continue
			}
			awarded, err := im.store.MarkAwarded(handle, badge.ID, entry.CurrentStreak)
			if err != nil {
				return imported, err
			}
			if awarded {
				imported++
			}
		}
	}
	return imported, nil
}
