// Package catalog validates badge definitions and hosts the registry of
// special-condition predicates. Standard badges are pure threshold checks;
// special badges attach a named predicate over the user's streak history.
package catalog

import (
	"fmt"

	"github.com/brightseth/vibe-sub000/internal/models"
)

// PredicateInput is the streak state a special condition is judged against.
// PreviousBest is the best streak recorded before the current update was
// applied; BestStreak is already reconciled (monotonic).
type PredicateInput struct {
	CurrentStreak int
	BestStreak    int
	PreviousBest  int
	Counters      models.Counters
}

type Predicate func(PredicateInput) bool

// The special conditions the catalog knows about. The legacy scripts
// disagreed on what "comeback" means; the rule kept here is the only one
// that stays well-defined once best_streak is monotonic: the updated run
// strictly exceeds the best recorded before this update.
var specialConditions = map[string]Predicate{
	"comeback": func(in PredicateInput) bool {
		return in.PreviousBest > 0 && in.CurrentStreak > in.PreviousBest
	},
	"restart": func(in PredicateInput) bool {
		return in.Counters[models.MetricRestarts] >= 1
	},
}

// SpecialCondition looks up a registered predicate by name.
func SpecialCondition(name string) (Predicate, bool) {
	p, ok := specialConditions[name]
	return p, ok
}

// Validate rejects malformed catalogs before they are seeded. The legacy
// data files performed no such checks and accumulated duplicate ids and
// zero thresholds; those are defects, not behavior to keep.
func Validate(badges []models.Badge) error {
	seen := make(map[string]bool, len(badges))
	for _, b := range badges {
		if b.ID == "" {
			return fmt.Errorf("badge with empty id (name=%q)", b.Name)
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true

		if b.SpecialCondition != "" {
			if _, ok := SpecialCondition(b.SpecialCondition); !ok {
				return fmt.Errorf("badge %q: unknown special condition %q", b.ID, b.SpecialCondition)
			}
		} else {
			if b.Metric == "" {
				return fmt.Errorf("badge %q: standard badge needs a metric", b.ID)
			}
			if b.Threshold < 1 {
				return fmt.Errorf("badge %q: threshold must be >= 1, got %d", b.ID, b.Threshold)
			}
		}

		if len(b.CelebrationMessages) == 0 {
			return fmt.Errorf("badge %q: no celebration message", b.ID)
		}
	}
	return nil
}
