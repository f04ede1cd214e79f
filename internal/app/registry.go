package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/auth"
	"github.com/thekidkid/clothing-brand/internal/cart"
	"github.com/thekidkid/clothing-brand/internal/cloudinary"
	"github.com/thekidkid/clothing-brand/internal/email"
	"github.com/thekidkid/clothing-brand/internal/kvstore"
	"github.com/thekidkid/clothing-brand/internal/order"
	"github.com/thekidkid/clothing-brand/internal/outbox"
	"github.com/thekidkid/clothing-brand/internal/payment"
	"github.com/thekidkid/clothing-brand/internal/product"
	"github.com/thekidkid/clothing-brand/internal/shared/database/dbgen"
)

func registerModules(router *gin.Engine, db *sql.DB, redisClient *redis.Client, imageSvc cloudinary.Service, logger *zap.Logger) {
	queries := dbgen.New(db)

	// --- Repositories ---
	productRepo := product.NewRepository(queries)
	orderRepo := order.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)

	// --- Session storage ---
	sessions := kvstore.NewRedisFactory(redisClient)

	// --- Services ---
	authService := auth.NewService()
	paymentService := payment.NewService(logger.Named("payment.service"))

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		logger.Warn("email disabled", zap.Error(err))
		emailService = email.NewNoopService()
	}
	productService := product.NewService(product.Deps{
		Repo:     productRepo,
		ImageSvc: imageSvc,
		Logger:   logger.Named("product.service"),
	})
	orderService := order.NewService(order.Deps{
		DB:         db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Products:   productRepo,
		PaymentSvc: paymentService,
		EmailSvc:   emailService,
		Logger:     logger.Named("order.service"),
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger.Named("auth.handler"))
	productHandler := product.NewHandler(productService, logger.Named("product.handler"))
	cartHandler := cart.NewHandler(sessions, productService, logger.Named("cart.handler"))
	orderHandler := order.NewHandler(orderService, logger.Named("order.handler"))
	paymentHandler := payment.NewHandler(paymentService, orderService, logger.Named("payment.handler"))

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		order.RegisterRoutes(api, orderHandler)
		payment.RegisterRoutes(api, paymentHandler)
	}
}
