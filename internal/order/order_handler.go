package order

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
	"github.com/thekidkid/clothing-brand/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

func getSessionIDFromContext(c *gin.Context) string {
	return c.GetString("session_id")
}

// ==================== STOREFRONT ENDPOINTS ====================

// POST /orders
func (h *Handler) Checkout(c *gin.Context) {
	sessionID := getSessionIDFromContext(c)
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing session", nil)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http checkout validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), sessionID, req)
	if err != nil {
		h.logger.Error("http checkout service error",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res, "Order placed")
}

// GET /orders/mine
func (h *Handler) ListMine(c *gin.Context) {
	sessionID := getSessionIDFromContext(c)
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing session", nil)
		return
	}

	orders, err := h.service.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders}, "")
}

// GET /orders/:id
func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// Shoppers may only see orders from their own session; admins see all.
	if c.GetString("role") != "ADMIN" && res.SessionID != getSessionIDFromContext(c) {
		httpErr := apperror.ToHTTP(ErrOrderNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "")
}

// ==================== ADMIN ENDPOINTS ====================

// GET /admin/orders
func (h *Handler) ListAdmin(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders}, "")
}

// PUT /admin/orders/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, "Order status updated")
}
