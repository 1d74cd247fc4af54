package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/config"
	"github.com/assetmagnets/platform/internal/database"
	"github.com/assetmagnets/platform/internal/logger"
	"github.com/assetmagnets/platform/internal/notify"
	"github.com/assetmagnets/platform/internal/repositories"
	"github.com/assetmagnets/platform/internal/scheduler"
)

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

	logger.Logger.Info("Starting notification worker")

	// Connect to database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Create Asynq server
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Queues: map[string]int{
			notify.Queue: 1,
		},
	})

	worker := NewWorker(
		logger.Logger,
		repositories.NewContactMessageRepository(db),
		notify.NewRedisCursor(rdb),
		notify.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From),
		cfg.Notify.Email,
	)

	// Register task handlers
	mux := asynq.NewServeMux()
	mux.HandleFunc(notify.TypeContactNew, worker.HandleContactNew)
	mux.HandleFunc(notify.TypeContactDigest, worker.HandleDigest)

	// Digest requests are produced by the cron scheduler
	client := asynq.NewClient(redisOpt)
	defer client.Close()

	sched, err := scheduler.New(cfg.Notify.DigestSchedule, notify.NewEnqueuer(client), logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create digest scheduler", zap.Error(err))
	}
	sched.Start()

	// Start worker
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Logger.Fatal("Failed to start worker", zap.Error(err))
		}
	}()

	logger.Logger.Info("Worker started", zap.Time("next_digest", sched.Next()))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	sched.Stop()
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
}
