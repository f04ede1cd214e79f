package producer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/outbox"
)

// ProcessOutboxEvents polls the outbox and relays pending events to Kafka.
// Publish failures mark the row FAILED; a failed MarkSent leaves the row
// PENDING and the event is re-published next tick, so consumers must be
// idempotent.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("interval", 5*time.Second))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, logger); err != nil {
				logger.Error("outbox processing error", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, 10)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Debug("processing pending events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Warn("failed to publish event",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Warn("failed to mark event sent",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			continue
		}

		logger.Info("event published",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType),
		)
	}

	return nil
}
