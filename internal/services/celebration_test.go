package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brightseth/vibe-sub000/internal/models"
)

func privateBadge() models.Badge {
	return models.Badge{
		ID: "first_day", Name: "First Day", Emoji: "🌱",
		CelebrationMessages: models.MessageList{"🌱 Welcome aboard, {handle}! You're at {streak} days!"},
	}
}

func publicBadge() models.Badge {
	return models.Badge{
		ID: "week_warrior", Name: "Week Warrior", Emoji: "💪", CelebratePublicly: true,
		CelebrationMessages: models.MessageList{"💪 One week strong, {handle}!"},
	}
}

func TestFormatCelebration_SingleBadgeRendersTemplate(t *testing.T) {
	out := FormatCelebration("@alice", []models.Badge{privateBadge()}, 1, 1)

	assert.Equal(t, "🌱 Welcome aboard, @alice! You're at 1 days!", out.DMMessage)
	assert.False(t, out.ShouldAnnouncePublicly)
	assert.Empty(t, out.BoardMessage)
}

func TestFormatCelebration_PublicFlagSetIfAnyBadgePublic(t *testing.T) {
	out := FormatCelebration("alice", []models.Badge{privateBadge(), publicBadge()}, 7, 1)

	assert.True(t, out.ShouldAnnouncePublicly)
	assert.Contains(t, out.DMMessage, "First Day 🌱")
	assert.Contains(t, out.DMMessage, "Week Warrior 💪")
	assert.Equal(t, "🎉 @alice just hit 7 days! 💪 Week Warrior!", out.BoardMessage)
}

func TestFormatCelebration_AllPrivateBatchStaysPrivate(t *testing.T) {
	other := privateBadge()
	other.ID = "early_bird"
	other.Name = "Early Bird"

	out := FormatCelebration("alice", []models.Badge{privateBadge(), other}, 3, 1)
	assert.False(t, out.ShouldAnnouncePublicly)
	assert.Empty(t, out.BoardMessage)
}

func TestFormatCelebration_EmptyBatch(t *testing.T) {
	out := FormatCelebration("alice", nil, 5, 1)
	assert.Empty(t, out.DMMessage)
	assert.False(t, out.ShouldAnnouncePublicly)
}

func TestFormatCelebration_SeedMakesVariantsDeterministic(t *testing.T) {
	badge := privateBadge()
	badge.CelebrationMessages = models.MessageList{
		"variant one for {handle}",
		"variant two for {handle}",
		"variant three for {handle}",
	}

	first := FormatCelebration("alice", []models.Badge{badge}, 1, 99)
	second := FormatCelebration("alice", []models.Badge{badge}, 1, 99)
	assert.Equal(t, first.DMMessage, second.DMMessage)

	// Different seeds eventually pick different variants
	seen := map[string]bool{}
	for seed := int64(0); seed < 20; seed++ {
		out := FormatCelebration("alice", []models.Badge{badge}, 1, seed)
		seen[out.DMMessage] = true
	}
	assert.Greater(t, len(seen), 1)
}
