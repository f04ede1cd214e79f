package payment

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
	"github.com/thekidkid/clothing-brand/internal/pkg/response"
)

// OrderUpdater is the slice of the order service the webhook needs.
type OrderUpdater interface {
	UpdatePaymentStatusByTransaction(ctx context.Context, transactionID, paymentStatus string) error
}

type Handler struct {
	service Service
	orders  OrderUpdater
	logger  *zap.Logger
}

func NewHandler(svc Service, orders OrderUpdater, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.handler")
	}
	return &Handler{service: svc, orders: orders, logger: l}
}

// POST /payments/intent
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	amountCents := int64(math.Round(req.Amount * 100))

	intent, err := h.service.CreateIntent(c.Request.Context(), amountCents, nil)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, CreateIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, "")
}

// POST /payments/webhook
func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to read payload", nil)
		return
	}

	event, err := h.service.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	logger := h.logger.With(
		zap.String("event_type", event.Type),
		zap.String("intent_id", event.IntentID),
	)

	switch event.Type {
	case EventPaymentSucceeded:
		err = h.orders.UpdatePaymentStatusByTransaction(c.Request.Context(), event.IntentID, "completed")
	case EventPaymentFailed:
		err = h.orders.UpdatePaymentStatusByTransaction(c.Request.Context(), event.IntentID, "failed")
	default:
		// Unhandled event types are acknowledged so the provider stops
		// retrying them.
		logger.Debug("webhook event ignored")
	}

	if err != nil {
		logger.Error("failed to apply webhook", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	logger.Info("webhook processed")
	c.JSON(http.StatusOK, gin.H{"received": true})
}
