package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/kvstore"
)

// ConsumeMessages reads order events and reacts to ORDER_PLACED by clearing
// the originating session's cart. Unknown event types are committed and
// skipped.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, sessions kvstore.Factory, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("error fetching message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == "ORDER_PLACED" {
			if err := handleOrderPlaced(ctx, msg.Value, sessions, logger); err != nil {
				logger.Error("error handling ORDER_PLACED", zap.Error(err))
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("error committing message", zap.Error(err))
		}
	}
}
