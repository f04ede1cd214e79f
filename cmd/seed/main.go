package main

import (
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/app"
	"github.com/thekidkid/clothing-brand/internal/shared/database/seed"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := app.ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := seed.SeedProducts(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}
