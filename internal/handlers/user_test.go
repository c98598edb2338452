package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/brightseth/vibe-sub000/internal/database"
	"github.com/brightseth/vibe-sub000/internal/services"
)

func getWithParams(handler gin.HandlerFunc, path string, params gin.Params) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", path, nil)
	c.Params = params
	handler(c)
	return w
}

func TestGetUserProgress_UnseenHandleIsZeroValued(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := getWithParams(GetUserProgress, "/api/users/ghost",
		gin.Params{{Key: "handle", Value: "@ghost"}})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Handle        string `json:"handle"`
		CurrentStreak int    `json:"currentStreak"`
		TotalPoints   int    `json:"totalPoints"`
		RankTitle     string `json:"rankTitle"`
		NextMilestone *struct {
			BadgeID  string `json:"badgeId"`
			DaysLeft int    `json:"daysLeft"`
		} `json:"nextMilestone"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "@ghost", response.Handle)
	assert.Equal(t, 0, response.CurrentStreak)
	assert.Equal(t, 0, response.TotalPoints)
	assert.Equal(t, "Newcomer 🌱", response.RankTitle)
	if assert.NotNil(t, response.NextMilestone) {
		assert.Equal(t, "first_day", response.NextMilestone.BadgeID)
		assert.Equal(t, 1, response.NextMilestone.DaysLeft)
	}
}

func TestGetUserProgress_SummarizesBadgesAndNextMilestone(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	evaluator := services.NewEvaluator(database.DB)
	_, err := evaluator.Evaluate("alice", map[string]int{"current_streak": 7})
	assert.NoError(t, err)

	w := getWithParams(GetUserProgress, "/api/users/alice",
		gin.Params{{Key: "handle", Value: "alice"}})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		TotalBadges   int    `json:"totalBadges"`
		TotalPoints   int    `json:"totalPoints"`
		RankTitle     string `json:"rankTitle"`
		NextMilestone *struct {
			BadgeID   string `json:"badgeId"`
			Threshold int    `json:"threshold"`
			DaysLeft  int    `json:"daysLeft"`
		} `json:"nextMilestone"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, 3, response.TotalBadges)
	assert.Equal(t, 85, response.TotalPoints) // 10 + 25 + 50
	assert.Equal(t, "Creator 💪", response.RankTitle)
	if assert.NotNil(t, response.NextMilestone) {
		assert.Equal(t, "consistency_champion", response.NextMilestone.BadgeID)
		assert.Equal(t, 14, response.NextMilestone.Threshold)
		assert.Equal(t, 7, response.NextMilestone.DaysLeft)
	}
}

func TestGetUserCelebrations_ReturnsLog(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	evaluator := services.NewEvaluator(database.DB)
	_, err := evaluator.Evaluate("bob", map[string]int{"current_streak": 3})
	assert.NoError(t, err)

	w := getWithParams(GetUserCelebrations, "/api/users/bob/celebrations",
		gin.Params{{Key: "handle", Value: "bob"}})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Celebrations []struct {
			BadgeID string `json:"badgeId"`
		} `json:"celebrations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Celebrations, 2) // first_day, early_bird
}

func TestListBadges_ReturnsCatalogInThresholdOrder(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := getWithParams(ListBadges, "/api/badges", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Badges []struct {
			ID        string `json:"id"`
			Threshold int    `json:"threshold"`
		} `json:"badges"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Badges, 10)

	for i := 1; i < len(response.Badges); i++ {
		assert.GreaterOrEqual(t, response.Badges[i].Threshold, response.Badges[i-1].Threshold)
	}
}

func TestGetBadge_NotFound(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	w := getWithParams(GetBadge, "/api/badges/nope",
		gin.Params{{Key: "id", Value: "nope"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats_CountsAwards(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	evaluator := services.NewEvaluator(database.DB)
	_, err := evaluator.Evaluate("alice", map[string]int{"current_streak": 3})
	assert.NoError(t, err)
	_, err = evaluator.Evaluate("bob", map[string]int{"current_streak": 1})
	assert.NoError(t, err)

	w := getWithParams(GetStats, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		UsersTracked  int64 `json:"usersTracked"`
		BadgesAwarded int64 `json:"badgesAwarded"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(2), response.UsersTracked)
	assert.Equal(t, int64(3), response.BadgesAwarded) // alice: 2, bob: 1
}

func TestGetLeaderboard_Handler(t *testing.T) {
	SetupTestDB(t)
	gin.SetMode(gin.TestMode)

	evaluator := services.NewEvaluator(database.DB)
	_, err := evaluator.Evaluate("alice", map[string]int{"current_streak": 7})
	assert.NoError(t, err)
	_, err = evaluator.Evaluate("bob", map[string]int{"current_streak": 1})
	assert.NoError(t, err)

	w := getWithParams(GetLeaderboard, "/api/leaderboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Leaderboard []struct {
			Handle string `json:"handle"`
			Rank   int    `json:"rank"`
		} `json:"leaderboard"`
		Total int `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	if assert.Len(t, response.Leaderboard, 2) {
		assert.Equal(t, "@alice", response.Leaderboard[0].Handle)
	}
}
