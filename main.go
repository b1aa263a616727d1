package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"github.com/06bhavi/ecommerce-inventory-system/internal/config"
	"github.com/06bhavi/ecommerce-inventory-system/internal/database"
	"github.com/06bhavi/ecommerce-inventory-system/internal/handlers"
	"github.com/06bhavi/ecommerce-inventory-system/internal/middleware"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/internal/services"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/logger"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	// --- Relational store ---
	db, err := database.OpenRelational(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to open relational store", zap.Error(err))
	}

	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	txManager := repositories.NewGormTxManager(db, productRepo, orderRepo)

	// --- Document store ---
	// When MongoDB is unreachable the service still runs; analytics,
	// reviews, and activity fall back to in-memory storage.
	var analyticsRepo repositories.AnalyticsRepository
	var reviewRepo repositories.ReviewRepository
	var activityRepo repositories.ActivityRepository

	mongoDB, mongoCleanup, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Warn("MongoDB unavailable, using in-memory document store", zap.Error(err))
		analyticsRepo = repositories.NewMockAnalyticsRepository()
		reviewRepo = repositories.NewMockReviewRepository()
		activityRepo = repositories.NewMockActivityRepository()
	} else {
		defer mongoCleanup()
		analyticsRepo = repositories.NewMongoAnalyticsRepository(mongoDB)
		reviewRepo = repositories.NewMongoReviewRepository(mongoDB)
		activityRepo = repositories.NewMongoActivityRepository(mongoDB)
	}

	// --- RabbitMQ ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQEnabled {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Warn("RabbitMQ unavailable, order events disabled", zap.Error(err))
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, log)
	analyticsService := services.NewAnalyticsService(productRepo, analyticsRepo, reviewRepo, activityRepo, log)
	storefrontService := services.NewStorefrontService(txManager, productRepo, orderRepo, analyticsService, mqClient, log)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService, analyticsService)
	storefrontHandler := handlers.NewStorefrontHandler(storefrontService)
	reviewHandler := handlers.NewReviewHandler(analyticsService)
	activityHandler := handlers.NewActivityHandler(analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(log),
	})
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	storefrontHandler.RegisterRoutes(apiV1)
	reviewHandler.RegisterRoutes(apiV1)
	activityHandler.RegisterRoutes(apiV1)
	analyticsHandler.RegisterRoutes(apiV1)

	// Catalog mutations require an authenticated admin.
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	productHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Periodic analytics reconciliation ---
	syncCtx, cancelSync := context.WithCancel(context.Background())
	defer cancelSync()
	go runReconcileLoop(syncCtx, analyticsService, cfg.AnalyticsSyncInterval, log)

	// --- Order event consumer ---
	if mqClient != nil {
		err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Info("order event received",
				zap.String("type", msg.Type),
				zap.ByteString("body", msg.Body))
			return nil
		})
		if err != nil {
			log.Warn("failed to start order event consumer", zap.Error(err))
		}
	}

	// --- Start HTTP server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")
	cancelSync()
	if err := app.Shutdown(); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

// runReconcileLoop reruns the analytics reconciliation on a fixed
// interval until the context is cancelled.
func runReconcileLoop(ctx context.Context, analytics *services.AnalyticsService, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := analytics.Reconcile(ctx); err != nil {
				log.Warn("scheduled analytics reconcile failed", zap.Error(err))
			}
		}
	}
}
