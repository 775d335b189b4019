package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"propapi/docs"
	"propapi/internal/auth"
	"propapi/internal/config"
	"propapi/internal/database"
	"propapi/internal/database/schema"
	handlers "propapi/internal/http/handler"
	"propapi/internal/http/middleware"
	"propapi/internal/identity"
	"propapi/internal/logger"
	"propapi/internal/otel"
	"propapi/internal/repository/mongodb"
	"propapi/internal/service"
	"propapi/internal/storage"
	"propapi/internal/validation"
)

// @title Property Portal API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, cleanup := logger.New(cfg.Log)
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}

	client, db, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Collection validators and indexes are idempotent; a fresh database
	// comes up ready and an existing one is left as is.
	if err := schema.EnsureAll(ctx, db, log); err != nil {
		log.Fatal("failed to ensure collections", zap.Error(err))
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	directory, err := identity.NewClient(cfg.Identity)
	if err != nil {
		log.Fatal("failed to initialize identity client", zap.Error(err))
	}

	// Initialize repositories, the validator and services
	userRepo := mongodb.NewUserMongo(db)
	propertyRepo := mongodb.NewPropertyMongo(db)
	documentRepo := mongodb.NewDocumentMongo(db)
	notificationRepo := mongodb.NewNotificationMongo(db)

	v := validation.New(userRepo, propertyRepo, directory, log)

	notificationSvc := service.NewNotificationService(notificationRepo, v)
	userSvc := service.NewUserService(userRepo, v)
	propertySvc := service.NewPropertyService(propertyRepo, v, notificationSvc, log)
	documentSvc := service.NewDocumentService(objStore, documentRepo, v, notificationSvc, log)

	tokens := &auth.Tokens{
		Secret: []byte(cfg.Auth.Secret),
		Issuer: cfg.Auth.Issuer,
		TTL:    cfg.Auth.TTL,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// Structured request logs
	app.Use(middleware.Logger(log))
	// Distributed tracing spans per request
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		DB:            client,
		Tokens:        tokens,
		Validator:     v,
		Users:         userSvc,
		Properties:    propertySvc,
		Documents:     documentSvc,
		Notifications: notificationSvc,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := cfg.AppHost + ":" + cfg.Port
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", addr))

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("server shutdown", zap.Error(err))
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Warn("mongo disconnect", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracing shutdown", zap.Error(err))
	}
	log.Info("stopped gracefully")
}
