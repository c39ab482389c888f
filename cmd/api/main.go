package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nbaclutch/clutch-api/internal/config"
	"github.com/nbaclutch/clutch-api/internal/engine"
	"github.com/nbaclutch/clutch-api/internal/handlers"
	"github.com/nbaclutch/clutch-api/internal/history"
	"github.com/nbaclutch/clutch-api/internal/worker"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// History store: Redis when configured, in-memory otherwise.
	var store history.Store
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warnw("Redis unreachable at startup, continuing anyway", "error", err)
		}
		cancel()
		store = history.NewRedisStore(redisClient, cfg.HistorySize)
		log.Infow("Using Redis prediction history", "cap", cfg.HistorySize)
	} else {
		store = history.NewMemoryStore(cfg.HistorySize)
		log.Infow("Using in-memory prediction history", "cap", cfg.HistorySize)
	}

	// Prediction engine. Missing artifacts just mean demo mode.
	eng := engine.New(engine.Config{
		ModelDir: cfg.ModelDir,
		Logger:   logger,
	})
	if eng.LoadArtifacts() {
		log.Infow("Prediction engine running with trained model", "modelDir", cfg.ModelDir)
	} else {
		log.Infow("Prediction engine running in demo mode", "modelDir", cfg.ModelDir)
	}

	// Async history writer.
	pool := worker.NewPool(worker.PoolConfig{
		WorkerCount:   cfg.WorkerCount,
		QueueSize:     cfg.QueueSize,
		BatchSize:     cfg.BatchSize,
		FlushInterval: cfg.FlushInterval,
		Store:         store,
		Logger:        logger,
	})

	h := handlers.New(handlers.Config{
		Engine:  eng,
		History: store,
		Pool:    pool,
		Redis:   redisClient,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool.Start(ctx)

	go func() {
		log.Infow("API listening", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}

	pool.Stop()
	if redisClient != nil {
		redisClient.Close()
	}
}
