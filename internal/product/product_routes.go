package product

import (
	"github.com/gin-gonic/gin"

	"github.com/thekidkid/clothing-brand/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// Loose enough for real browsing, tight enough to discourage scraping.
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.ListPublic,
		)

		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetPublic,
		)
	}

	adminProducts := r.Group("/admin/products")
	adminProducts.Use(middleware.AuthMiddleware())
	adminProducts.Use(middleware.RoleMiddleware("ADMIN"))
	{
		adminProducts.GET("",
			middleware.RateLimitByUser(10, 20),
			handler.ListAdmin,
		)

		adminProducts.GET("/:id",
			middleware.RateLimitByUser(10, 20),
			handler.Detail,
		)

		// Mutations are throttled hard to absorb double-clicks from the
		// dashboard.
		adminMutationLimit := middleware.RateLimitByUser(1, 3)

		adminProducts.POST("", adminMutationLimit, handler.Create)
		adminProducts.PUT("/:id", adminMutationLimit, handler.Update)
		adminProducts.PATCH("/:id/status", adminMutationLimit, handler.UpdateStatus)
		adminProducts.PATCH("/:id/stock", adminMutationLimit, handler.UpdateStock)
		adminProducts.DELETE("/:id", adminMutationLimit, handler.Delete)
	}
}
