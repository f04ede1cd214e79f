package cart

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/notify"
	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
	"github.com/thekidkid/clothing-brand/internal/pkg/response"
)

// ProductSource resolves product ids to catalog records. Only active products
// resolve; the cart never holds a product the storefront cannot show.
type ProductSource interface {
	GetPublic(ctx context.Context, productID string) (catalog.Product, error)
}

type Handler struct {
	sessions kvstore.Factory
	products ProductSource
	logger   *zap.Logger
}

func NewHandler(sessions kvstore.Factory, products ProductSource, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{sessions: sessions, products: products, logger: l}
}

// container hydrates the session's state for the duration of one request.
func (h *Handler) container(c *gin.Context) *Container {
	sessionID := c.GetString("session_id")
	return NewContainer(c.Request.Context(), h.sessions.ForSession(sessionID))
}

// ==================== CART ENDPOINTS ====================

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	ct := h.container(c)
	response.Success(c, http.StatusOK, cartState(ct), "")
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	product, err := h.products.GetPublic(c.Request.Context(), req.ProductID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// Variant products need a full selection before they can enter the cart.
	if (len(product.Sizes) > 0 || len(product.Colors) > 0) && !catalog.CanAddToCart(req.Size, req.Color) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Select a size and color first", nil)
		return
	}

	ct := h.container(c)
	ct.AddToCart(c.Request.Context(), product, req.Size, req.Color)

	response.Success(c, http.StatusOK, cartState(ct), "")
}

// PATCH /cart/items/:productId
func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	ct := h.container(c)
	ct.UpdateQuantity(c.Request.Context(), c.Param("productId"), *req.Quantity)

	response.Success(c, http.StatusOK, cartState(ct), "")
}

// DELETE /cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	ct := h.container(c)
	ct.RemoveFromCart(c.Request.Context(), c.Param("productId"))

	response.Success(c, http.StatusOK, cartState(ct), "")
}

// DELETE /cart
func (h *Handler) ClearCart(c *gin.Context) {
	ct := h.container(c)
	ct.ClearCart(c.Request.Context())

	response.Success(c, http.StatusOK, cartState(ct), "")
}

// POST /cart/notification/dismiss
func (h *Handler) DismissNotification(c *gin.Context) {
	var req DismissNotificationRequest
	_ = c.ShouldBindJSON(&req)

	ct := h.container(c)
	ct.DismissNotification(req.Reason)

	response.Success(c, http.StatusOK, gin.H{"dismissed": req.Reason != notify.DismissReasonClickaway}, "")
}

// ==================== WISHLIST ENDPOINTS ====================

// GET /wishlist
func (h *Handler) GetWishlist(c *gin.Context) {
	ct := h.container(c)
	response.Success(c, http.StatusOK, wishlistState(ct), "")
}

// POST /wishlist/items/:productId
func (h *Handler) ToggleWishlist(c *gin.Context) {
	product, err := h.products.GetPublic(c.Request.Context(), c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	ct := h.container(c)
	ct.ToggleWishlist(c.Request.Context(), product)

	response.Success(c, http.StatusOK, wishlistState(ct), "")
}

// DELETE /wishlist/items/:productId
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	ct := h.container(c)
	ct.RemoveFromWishlist(c.Request.Context(), c.Param("productId"))

	response.Success(c, http.StatusOK, wishlistState(ct), "")
}

func cartState(ct *Container) CartStateResponse {
	return CartStateResponse{
		Items:        ct.CartItems(),
		Total:        ct.CartTotal(),
		Count:        ct.CartItemsCount(),
		Notification: currentNotification(ct),
	}
}

func wishlistState(ct *Container) WishlistResponse {
	return WishlistResponse{
		Items:        ct.WishlistItems(),
		Notification: currentNotification(ct),
	}
}

func currentNotification(ct *Container) *notify.Notification {
	n := ct.Notification()
	if !n.Open {
		return nil
	}
	return &n
}
