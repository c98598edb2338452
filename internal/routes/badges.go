package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/handlers"
)

func RegisterBadgeRoutes(r gin.IRouter) {
	badges := r.Group("/badges")
	{
		badges.GET("", handlers.ListBadges)
		badges.GET("/:id", handlers.GetBadge)
	}

	// Public board data
	r.GET("/leaderboard", handlers.GetLeaderboard)
	r.GET("/stats", handlers.GetStats)
	r.GET("/activity", handlers.GetActivityFeed)
}
