package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/handlers"
	"github.com/brightseth/vibe-sub000/internal/middleware"
)

func RegisterCheckinRoutes(r gin.IRouter) {
	checkins := r.Group("/checkins")
	checkins.Use(middleware.AuthMiddleware(), middleware.CheckinRateLimit())
	{
		checkins.POST("", handlers.Checkin)
	}
}
