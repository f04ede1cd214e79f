package payment

import (
	"context"
	"encoding/json"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*Intent, error)
	VerifyWebhook(payload []byte, signature string) (WebhookEvent, error)
}

type service struct {
	webhookSecret string
	currency      string
	logger        *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	currency := os.Getenv("STRIPE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}

	return &service{
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		currency:      currency,
		logger:        l,
	}
}

func (s *service) CreateIntent(ctx context.Context, amountCents int64, metadata map[string]string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error("failed to create payment intent",
			zap.Int64("amount_cents", amountCents),
			zap.Error(err),
		)
		return nil, ErrPaymentFailed
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

func (s *service) VerifyWebhook(payload []byte, signature string) (WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		s.logger.Warn("webhook signature rejected", zap.Error(err))
		return WebhookEvent{}, ErrInvalidSignature
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		s.logger.Error("failed to decode webhook payload", zap.Error(err))
		return WebhookEvent{}, ErrPaymentFailed
	}

	return WebhookEvent{
		Type:     string(event.Type),
		IntentID: pi.ID,
	}, nil
}
