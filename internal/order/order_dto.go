package order

import (
	"encoding/json"
	"time"
)

// ==================== REQUEST STRUCTS ====================

type CheckoutItem struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int32  `json:"quantity" binding:"required,gte=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

type CheckoutRequest struct {
	Email           string          `json:"email" binding:"omitempty,email"`
	PaymentMethod   string          `json:"paymentMethod" binding:"required,oneof=card cod"`
	ShippingAddress ShippingAddress `json:"shippingAddress" binding:"required"`
	Items           []CheckoutItem  `json:"items" binding:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderPlacedPayload is the outbox event body emitted on checkout and
// consumed to clear the session's cart.
type OrderPlacedPayload struct {
	SessionID string `json:"session_id"`
	OrderID   string `json:"order_id"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	NameSnapshot string  `json:"nameSnapshot"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	SessionID       string              `json:"sessionId"`
	Email           string              `json:"email,omitempty"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"paymentStatus"`
	PaymentMethod   string              `json:"paymentMethod"`
	TransactionID   string              `json:"transactionId,omitempty"`
	ShippingAddress json.RawMessage     `json:"shippingAddress"`
	TotalAmount     float64             `json:"totalAmount"`
	PlacedAt        time.Time           `json:"placedAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Items           []OrderItemResponse `json:"items,omitempty"`
	ClientSecret    string              `json:"clientSecret,omitempty"`
}
