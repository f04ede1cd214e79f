package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/messaging/kafka/consumer"
)

// RunConsumer listens for order events and clears session carts after
// checkout.
func RunConsumer(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("consumer")

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	sessions := kvstore.NewRedisFactory(redisClient)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   OrdersTopic,
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()
	logger.Info("kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, sessions, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	logger.Info("stopped")

	return nil
}
