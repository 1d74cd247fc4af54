package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/hibiken/asynq"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/assetmagnets/platform/docs"
	authMiddleware "github.com/assetmagnets/platform/internal/auth/middleware"
	"github.com/assetmagnets/platform/internal/auth/service"
	"github.com/assetmagnets/platform/internal/config"
	"github.com/assetmagnets/platform/internal/database"
	"github.com/assetmagnets/platform/internal/handlers"
	"github.com/assetmagnets/platform/internal/logger"
	loggerMiddleware "github.com/assetmagnets/platform/internal/logger/middleware"
	"github.com/assetmagnets/platform/internal/middlewares"
	"github.com/assetmagnets/platform/internal/notify"
	"github.com/assetmagnets/platform/internal/repositories"
	"github.com/assetmagnets/platform/internal/seed"
	"github.com/assetmagnets/platform/internal/services"
)

// @title Asset Magnets API
// @version 1.0
// @description API for the Asset Magnets corporate and training platform

// @contact.name API Support
// @contact.email support@assetmagnets.com

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Asset Magnets API", zap.String("env", cfg.Env))

	if cfg.JWT.InsecureDefault {
		logger.Logger.Warn("JWT_SECRET is not set, using the insecure development secret")
	}

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// "api seed" seeds the demo data and exits
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := runSeed(db); err != nil {
			logger.Logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		logger.Logger.Info("Demo data seeded")
		return
	}

	if cfg.SeedDemoData {
		if err := runSeed(db); err != nil {
			logger.Logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Notification queue
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer queue.Close()

	// Initialize JWT token generator
	tokenGenerator := service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewContactMessageRepository(db)

	// Initialize services
	svc := handlers.Services{
		Auth:            services.NewAuthService(userRepo, tokenGenerator, logger.Logger),
		Users:           services.NewUserService(userRepo, logger.Logger),
		Services:        services.NewEntityService(repositories.NewTableRepository(db, repositories.ServiceSchema), logger.Logger),
		Courses:         services.NewEntityService(repositories.NewTableRepository(db, repositories.CourseSchema), logger.Logger),
		Jobs:            services.NewEntityService(repositories.NewTableRepository(db, repositories.JobSchema), logger.Logger),
		ContactInfo:     services.NewEntityService(repositories.NewTableRepository(db, repositories.ContactInfoSchema), logger.Logger),
		FAQs:            services.NewEntityService(repositories.NewTableRepository(db, repositories.FAQSchema), logger.Logger),
		Offices:         services.NewEntityService(repositories.NewTableRepository(db, repositories.GlobalOfficeSchema), logger.Logger),
		ContactMessages: services.NewContactMessageService(messageRepo, notify.NewEnqueuer(queue), logger.Logger),
	}

	r := newRouter(cfg, svc, tokenGenerator, logger.Logger)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// newRouter builds the HTTP router with the shared middleware stack
func newRouter(cfg *config.Config, svc handlers.Services, validator authMiddleware.TokenValidator, appLogger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(appLogger))
	r.Use(middlewares.RecoveryMiddleware(appLogger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(middlewares.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api", func(r chi.Router) {
		handlers.Mount(r, svc, handlers.RouteOptions{
			Validator:    validator,
			Logger:       appLogger,
			ExposeErrors: cfg.IsDevelopment(),
			AuthLimiter:  httprate.LimitByIP(20, time.Minute),
		})
	})

	return r
}

// runSeed creates the demo accounts and default content
func runSeed(db *sql.DB) error {
	seeder := seed.NewSeeder(seed.Stores{
		Users:       repositories.NewUserRepository(db),
		Services:    repositories.NewTableRepository(db, repositories.ServiceSchema),
		ContactInfo: repositories.NewTableRepository(db, repositories.ContactInfoSchema),
		FAQs:        repositories.NewTableRepository(db, repositories.FAQSchema),
		Offices:     repositories.NewTableRepository(db, repositories.GlobalOfficeSchema),
	}, logger.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return seeder.Run(ctx)
}
