package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/cart"
	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/order"
)

// handleOrderPlaced empties the session cart once its order is committed.
// Re-clearing an already empty cart is a no-op, so redeliveries are safe.
func handleOrderPlaced(ctx context.Context, payload []byte, sessions kvstore.Factory, logger *zap.Logger) error {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	logger.Info("clearing cart for session",
		zap.String("session_id", data.SessionID),
		zap.String("order_id", data.OrderID),
	)

	ct := cart.NewContainer(ctx, sessions.ForSession(data.SessionID))
	ct.ClearCart(ctx)

	return nil
}
