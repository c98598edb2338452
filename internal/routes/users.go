package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brightseth/vibe-sub000/internal/handlers"
)

func RegisterUserRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("", handlers.ListUsers)
		users.GET("/:handle", handlers.GetUserProgress)
		users.GET("/:handle/celebrations", handlers.GetUserCelebrations)
	}
}
