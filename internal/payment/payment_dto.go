package payment

// CreateIntentRequest carries the charge amount in the store currency.
type CreateIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateIntentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

// Intent is the provider-neutral result of creating a payment intent.
type Intent struct {
	ID           string
	ClientSecret string
}

// WebhookEvent is a verified event from the payment provider.
type WebhookEvent struct {
	Type     string
	IntentID string
}

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)
