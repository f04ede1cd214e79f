package cart

import "github.com/thekidkid/clothing-brand/internal/notify"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type DismissNotificationRequest struct {
	Reason string `json:"reason"`
}

// ==================== RESPONSE STRUCTS ====================

// CartStateResponse is the full cart view returned after every read or
// mutation, so the client never has to track deltas.
type CartStateResponse struct {
	Items        []LineItem           `json:"items"`
	Total        float64              `json:"total"`
	Count        int                  `json:"count"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

type WishlistResponse struct {
	Items        []WishlistEntry      `json:"items"`
	Notification *notify.Notification `json:"notification,omitempty"`
}
