package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/thekidkid/clothing-brand/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		// Tight per-IP limit against password brute force.
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		authenticated := auth.Group("/")
		authenticated.Use(middleware.AuthMiddleware())
		{
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)

			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
