package order

import (
	"github.com/gin-gonic/gin"

	"github.com/thekidkid/clothing-brand/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.SessionMiddleware())
	{
		// Checkout is throttled hard to absorb accidental double submits.
		orders.POST("",
			middleware.RateLimitByIP(0.2, 1),
			handler.Checkout,
		)

		orders.GET("/mine",
			middleware.RateLimitByIP(5, 10),
			handler.ListMine,
		)

		orders.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Detail,
		)
	}

	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.AuthMiddleware())
	adminOrders.Use(middleware.RoleMiddleware("ADMIN"))
	adminOrders.Use(middleware.RateLimitByUser(10, 20))
	{
		adminOrders.GET("", handler.ListAdmin)
		adminOrders.PUT("/:id/status",
			middleware.RateLimitByUser(2, 5),
			handler.UpdateStatus,
		)
	}
}
