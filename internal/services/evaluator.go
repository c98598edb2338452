package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/catalog"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/internal/store"
	"github.com/brightseth/vibe-sub000/pkg/errors"
	"github.com/brightseth/vibe-sub000/pkg/logger"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

// Evaluator applies a metric update to a user and awards every catalog badge
// the updated state newly satisfies.
type Evaluator struct {
	db    *gorm.DB
	store *store.ProgressStore
}

func NewEvaluator(db *gorm.DB) *Evaluator {
	return &Evaluator{db: db, store: store.NewProgressStore(db)}
}

func (e *Evaluator) Store() *store.ProgressStore {
	return e.store
}

// Evaluate updates the handle's progress with the reported metrics and
// returns the newly earned badges ordered by ascending threshold. A user who
// jumps from streak 0 to 40 in one update earns every intervening milestone
// in the same call. Re-evaluating unchanged metrics returns an empty slice.
func (e *Evaluator) Evaluate(handle string, metrics map[string]int) ([]models.Badge, error) {
	handle = utils.NormalizeHandle(handle)
	if handle == "" {
		return nil, errors.BadRequest("handle is required")
	}
	for name, value := range metrics {
		if value < 0 {
			return nil, errors.InvalidMetric(fmt.Sprintf("metric %q cannot be negative", name))
		}
	}

	progress, err := e.store.Get(handle)
	if err != nil {
		return nil, err
	}
	previousBest := progress.BestStreak

	// Apply the streak update. A lower value than stored is accepted only
	// as a broken streak (0, or 1 if the user already restarted); it bumps
	// the restarts counter. Any other regression is rejected.
	if current, ok := metrics[models.MetricCurrentStreak]; ok {
		if current < progress.CurrentStreak {
			if current > 1 {
				return nil, errors.InvalidMetric(fmt.Sprintf(
					"current_streak can only regress to 0 or 1 (got %d, stored %d)",
					current, progress.CurrentStreak))
			}
			progress.Counters[models.MetricRestarts]++
		}
		progress.CurrentStreak = current
	}
	if progress.CurrentStreak > progress.BestStreak {
		progress.BestStreak = progress.CurrentStreak
	}

	// Counters only move forward; agents report absolute totals and a stale
	// report must not undo a fresher one.
	for name, value := range metrics {
		if name == models.MetricCurrentStreak {
			continue
		}
		if value > progress.Counters[name] {
			progress.Counters[name] = value
		}
	}

	progress.LastUpdated = time.Now()
	if err := e.store.Save(&progress); err != nil {
		return nil, err
	}

	earned, err := e.store.EarnedIDs(handle)
	if err != nil {
		return nil, err
	}

	var definitions []models.Badge
	if err := e.db.Order("threshold asc, id asc").Find(&definitions).Error; err != nil {
		return nil, err
	}

	input := catalog.PredicateInput{
		CurrentStreak: progress.CurrentStreak,
		BestStreak:    progress.BestStreak,
		PreviousBest:  previousBest,
		Counters:      progress.Counters,
	}

	var newlyEarned []models.Badge
	for _, badge := range definitions {
		if earned[badge.ID] {
			continue
		}

		value := progress.CurrentStreak
		qualified := false
		if badge.SpecialCondition != "" {
			predicate, ok := catalog.SpecialCondition(badge.SpecialCondition)
			if !ok {
				logger.Warn().Str("badge", badge.ID).Str("condition", badge.SpecialCondition).
					Msg("Badge references unregistered special condition, skipping")
				continue
			}
			qualified = predicate(input)
		} else {
			if badge.Metric != models.MetricCurrentStreak {
				value = progress.Counters[badge.Metric]
			}
			qualified = value >= badge.Threshold
		}
		if !qualified {
			continue
		}

		awarded, err := e.store.MarkAwarded(handle, badge.ID, value)
		if err != nil {
			return nil, err
		}
		if !awarded {
			// Lost a race with a concurrent evaluation; the other caller
			// owns the celebration.
			continue
		}

		LogCelebration(e.db, handle, badge, value)
		newlyEarned = append(newlyEarned, badge)
	}

	if len(newlyEarned) > 0 {
		InvalidateLeaderboardCache()
		logger.Info().Str("handle", handle).Int("badges", len(newlyEarned)).
			Msg("New badges awarded")
	}

	// definitions were fetched threshold-ascending, so newlyEarned already
	// celebrates smaller milestones first.
	return newlyEarned, nil
}

// Award grants a specific badge manually (admin surface). Unknown badge ids
// are a validation error, never a silent no-op.
func (e *Evaluator) Award(handle, badgeID string) (*models.Badge, bool, error) {
	handle = utils.NormalizeHandle(handle)
	if handle == "" {
		return nil, false, errors.BadRequest("handle is required")
	}

	var badge models.Badge
	if err := e.db.First(&badge, "id = ?", badgeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, errors.ErrUnknownBadge
		}
		return nil, false, err
	}

	progress, err := e.store.Get(handle)
	if err != nil {
		return nil, false, err
	}
	value := progress.CurrentStreak
	if badge.Metric != "" && badge.Metric != models.MetricCurrentStreak {
		value = progress.Counters[badge.Metric]
	}

	awarded, err := e.store.MarkAwarded(handle, badge.ID, value)
	if err != nil {
		return nil, false, err
	}
	if awarded {
		if err := e.store.Save(&progress); err != nil {
			return nil, false, err
		}
		LogCelebration(e.db, handle, badge, value)
		InvalidateLeaderboardCache()
	}
	return &badge, awarded, nil
}
