package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/handlers"
	"github.com/brightseth/vibe-sub000/internal/middleware"
)

func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/badges/:id/award", handlers.AwardBadge)
	}
}
