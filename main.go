package main

import (
	"log"

	"github.com/eyesoft/studio-backend/config"
	"github.com/eyesoft/studio-backend/internal/consumer"
	"github.com/eyesoft/studio-backend/internal/handler"
	"github.com/eyesoft/studio-backend/internal/mailer"
	"github.com/eyesoft/studio-backend/internal/middleware"
	"github.com/eyesoft/studio-backend/internal/repository"
	"github.com/eyesoft/studio-backend/internal/service"
	"github.com/eyesoft/studio-backend/pkg/database"
	"github.com/eyesoft/studio-backend/pkg/rabbitmq"
	"github.com/eyesoft/studio-backend/pkg/redisclient"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Email worker: consumes what the booking service publishes
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ consumer: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	sender := mailer.NewResendMailer(mailer.Config{
		APIKey:      cfg.ResendAPIKey,
		FromBooking: cfg.EmailFromBooking,
		FromNotify:  cfg.EmailFromNotify,
		AdminEmail:  cfg.AdminEmail,
	})
	consumer.NewNotificationConsumer(sender).Start(msgs)

	// Optional: nil disables cache + rate limit
	rdb := redisclient.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Services
	bookingSvc := service.NewBookingService(bookingRepo, publisher)
	portfolioSvc := service.NewPortfolioService(portfolioRepo)
	likeSvc := service.NewLikeService(likeRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "studio-backend"})
	})

	rateLimit := middleware.RateLimit(rdb, cfg.RateLimitCapacity, cfg.RateLimitRefillInterval)
	cache := middleware.ResponseCache(rdb, cfg.PortfolioCacheTTL)

	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, rateLimit)
	handler.NewPortfolioHandler(portfolioSvc).RegisterRoutes(e, cache)
	handler.NewLikeHandler(likeSvc).RegisterRoutes(e)

	log.Printf("Studio Backend starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
