package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/app"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger()
	defer logger.Sync()

	if err := app.RunConsumer(logger); err != nil {
		logger.Fatal("consumer error", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
