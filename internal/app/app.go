package app

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/thekidkid/clothing-brand/internal/catalog"
	"github.com/thekidkid/clothing-brand/internal/cloudinary"
	"github.com/thekidkid/clothing-brand/internal/middleware"
)

// BuildApp connects the infrastructure and mounts every route group on the
// router. It owns nothing long-lived beyond the connections it opens.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	registerValidations()

	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		return err
	}

	imageSvc, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		os.Getenv("CLOUDINARY_FOLDER"),
	)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig()))

	registerModules(router, db, redisClient, imageSvc, logger)

	return nil
}

// registerValidations adds the "category" rule used by listing queries.
// "All" passes: the storefront sends it to mean no category filter.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || value == "All" || catalog.ValidCategory(value)
		})
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:5173"}
	}

	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
	cfg.ExposeHeaders = []string{"X-Request-ID"}

	return cfg
}
