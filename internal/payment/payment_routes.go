package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/thekidkid/clothing-brand/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	payments := r.Group("/payments")
	{
		// Intent creation sits behind the session so a client secret is
		// always tied to a shopper.
		payments.POST("/intent",
			middleware.SessionMiddleware(),
			middleware.RateLimitByIP(1, 3),
			handler.CreateIntent,
		)

		// The webhook authenticates itself via signature, never via session.
		payments.POST("/webhook", handler.HandleWebhook)
	}
}
