package services

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/models"
	"github.com/brightseth/vibe-sub000/pkg/utils"
)

type LeaderboardEntry struct {
	Rank          int            `json:"rank"`
	Handle        string         `json:"handle"`
	TotalPoints   int            `json:"totalPoints"`
	BadgeCount    int            `json:"badgeCount"`
	CurrentStreak int            `json:"currentStreak"`
	BestStreak    int            `json:"bestStreak"`
	RankTitle     string         `json:"rankTitle"`
	Badges        []BadgeSummary `json:"badges"`
	LastUnlockAt  time.Time      `json:"lastUnlockAt"` // for tie-breaking
}

type BadgeSummary struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Emoji  string           `json:"emoji"`
	Tier   models.BadgeTier `json:"tier"`
	Points int              `json:"points"`
}

// In-memory cache with short TTL; Redis sits in front when available.
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	leaderboardCache *cachedLeaderboard
	lbMutex          sync.RWMutex
	lbTTL            = 10 * time.Second
)

const lbCacheKey = "leaderboard:global"

// InvalidateLeaderboardCache clears cached standings (call on new award)
func InvalidateLeaderboardCache() {
	lbMutex.Lock()
	leaderboardCache = nil
	lbMutex.Unlock()
	database.CacheInvalidate(lbCacheKey)
}

// GetLeaderboard calculates or returns cached standings, sorted by total
// badge points, then badge count, then earliest latest-unlock.
func GetLeaderboard(db *gorm.DB) ([]LeaderboardEntry, error) {
	lbMutex.RLock()
	if leaderboardCache != nil && time.Now().Before(leaderboardCache.ExpiresAt) {
		entries := leaderboardCache.Entries
		lbMutex.RUnlock()
		return entries, nil
	}
	lbMutex.RUnlock()

	var cached []LeaderboardEntry
	if err := database.CacheGet(lbCacheKey, &cached); err == nil && len(cached) > 0 {
		return cached, nil
	}

	var awards []models.UserBadge
	if err := db.Preload("Badge").Order("unlocked_at asc").Find(&awards).Error; err != nil {
		return nil, err
	}

	entryMap := make(map[string]*LeaderboardEntry)
	for _, award := range awards {
		entry := entryMap[award.Handle]
		if entry == nil {
			entry = &LeaderboardEntry{Handle: utils.DisplayHandle(award.Handle)}
			entryMap[award.Handle] = entry
		}

		entry.TotalPoints += award.Badge.Points
		entry.BadgeCount++
		entry.Badges = append(entry.Badges, BadgeSummary{
			ID:     award.Badge.ID,
			Name:   award.Badge.Name,
			Emoji:  award.Badge.Emoji,
			Tier:   award.Badge.Tier,
			Points: award.Badge.Points,
		})
		if award.UnlockedAt.After(entry.LastUnlockAt) {
			entry.LastUnlockAt = award.UnlockedAt
		}
	}

	// Attach streaks (users with progress but no badges stay off the board,
	// matching the legacy dashboards).
	var progress []models.UserProgress
	if err := db.Find(&progress).Error; err != nil {
		return nil, err
	}
	for _, p := range progress {
		if entry, ok := entryMap[p.Handle]; ok {
			entry.CurrentStreak = p.CurrentStreak
			entry.BestStreak = p.BestStreak
		}
	}

	leaderboard := make([]LeaderboardEntry, 0, len(entryMap))
	for _, entry := range entryMap {
		entry.RankTitle = RankTitle(entry.TotalPoints)
		leaderboard = append(leaderboard, *entry)
	}

	sort.Slice(leaderboard, func(i, j int) bool {
		if leaderboard[i].TotalPoints != leaderboard[j].TotalPoints {
			return leaderboard[i].TotalPoints > leaderboard[j].TotalPoints
		}
		if leaderboard[i].BadgeCount != leaderboard[j].BadgeCount {
			return leaderboard[i].BadgeCount > leaderboard[j].BadgeCount
		}
		// Whoever reached the tied score first wins the tie
		return leaderboard[i].LastUnlockAt.Before(leaderboard[j].LastUnlockAt)
	})

	for i := range leaderboard {
		leaderboard[i].Rank = i + 1
	}

	lbMutex.Lock()
	leaderboardCache = &cachedLeaderboard{
		Entries:   leaderboard,
		ExpiresAt: time.Now().Add(lbTTL),
	}
	lbMutex.Unlock()
	database.CacheSet(lbCacheKey, leaderboard, lbTTL)

	return leaderboard, nil
}

// RankTitle maps total badge points to the workshop rank ladder.
func RankTitle(points int) string {
	switch {
	case points >= 1000:
		return "Legend 👑"
	case points >= 500:
		return "Champion 🏆"
	case points >= 250:
		return "Expert 💎"
	case points >= 100:
		return "Builder 🔥"
	case points >= 50:
		return "Creator 💪"
	case points >= 25:
		return "Explorer 🌅"
	default:
		return "Newcomer 🌱"
	}
}
