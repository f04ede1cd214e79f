package cart

import (
	"github.com/gin-gonic/gin"

	"github.com/thekidkid/clothing-brand/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	carts.Use(middleware.SessionMiddleware())
	carts.Use(middleware.RateLimitByUser(5, 10))
	{
		carts.GET("", handler.GetCart)
		carts.POST("/items", handler.AddItem)
		carts.PATCH("/items/:productId", handler.UpdateQuantity)
		carts.DELETE("/items/:productId", handler.RemoveItem)
		carts.DELETE("", handler.ClearCart)
		carts.POST("/notification/dismiss", handler.DismissNotification)
	}

	wishlist := r.Group("/wishlist")
	wishlist.Use(middleware.SessionMiddleware())
	wishlist.Use(middleware.RateLimitByUser(5, 10))
	{
		wishlist.GET("", handler.GetWishlist)
		wishlist.POST("/items/:productId", handler.ToggleWishlist)
		wishlist.DELETE("/items/:productId", handler.RemoveFromWishlist)
	}
}
