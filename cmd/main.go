package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"user-service/internal/api"
	"user-service/internal/config"
	"user-service/internal/repository"
	"user-service/internal/service"
	"user-service/internal/validation"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	var kafkaWriter *kafka.Writer
	if cfg.KafkaBrokers != "" {
		kafkaWriter = config.NewKafkaWriter(cfg.KafkaBrokers, "user-topic")
	}

	userRepo := repository.NewUserRepository()
	userService := service.NewUserService(userRepo, kafkaWriter)
	userHandler := api.NewUserHandler(userService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewUserValidator()
	e.HTTPErrorHandler = api.ProblemHandler(logger)

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     50,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"detail": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"detail": "rate limit exceeded"})
		},
	}

	// Middleware
	e.Use(api.BodyLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// Routes
	api.RegisterRoutes(e, userHandler)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
