package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

// CelebrationOutput is what the announcer bot needs: a DM for the user, an
// optional board message, and whether the board should see it at all.
type CelebrationOutput struct {
	DMMessage              string `json:"dmMessage"`
	BoardMessage           string `json:"boardMessage,omitempty"`
	ShouldAnnouncePublicly bool   `json:"shouldAnnouncePublicly"`
}

// FormatCelebration renders the celebration for a batch of newly earned
// badges. Template variant selection is driven by seed so tests are
// deterministic; production passes time-based seeds for variety.
func FormatCelebration(handle string, newlyEarned []models.Badge, streak int, seed int64) CelebrationOutput {
	display := utils.DisplayHandle(utils.NormalizeHandle(handle))

	if len(newlyEarned) == 0 {
		return CelebrationOutput{}
	}

	rng := rand.New(rand.NewSource(seed))

	announce := false
	var topPublic *models.Badge
	for i := range newlyEarned {
		if newlyEarned[i].CelebratePublicly {
			announce = true
			topPublic = &newlyEarned[i]
		}
	}

	out := CelebrationOutput{ShouldAnnouncePublicly: announce}

	if len(newlyEarned) == 1 {
		badge := newlyEarned[0]
		out.DMMessage = renderTemplate(pickVariant(rng, badge.CelebrationMessages), display, streak)
	} else {
		names := make([]string, len(newlyEarned))
		for i, badge := range newlyEarned {
			names[i] = fmt.Sprintf("%s %s", badge.Name, badge.Emoji)
		}
		out.DMMessage = fmt.Sprintf("🎉 %s unlocked %d new badges: %s! You're at %d days - keep the momentum going!",
			display, len(newlyEarned), strings.Join(names, ", "), streak)
	}

	// Board announcements use the biggest public milestone in the batch
	// (badges arrive threshold-ascending, so the last public one wins).
	if topPublic != nil {
		out.BoardMessage = fmt.Sprintf("🎉 %s just hit %d days! %s %s!",
			display, streak, topPublic.Emoji, topPublic.Name)
	}

	return out
}

func pickVariant(rng *rand.Rand, variants models.MessageList) string {
	if len(variants) == 0 {
		return "{handle} earned a new badge!"
	}
	return variants[rng.Intn(len(variants))]
}

func renderTemplate(template, display string, streak int) string {
	r := strings.NewReplacer(
		"{handle}", display,
		"{streak}", strconv.Itoa(streak),
	)
	return r.Replace(template)
}
