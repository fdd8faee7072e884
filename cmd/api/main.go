// Package main is the entry point for the Pocket Ledger API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/infra/db"
	"github.com/pocketledger/backend/internal/infra/dependency"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Pocket Ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.LabelModel{},
		&model.TransactionModel{},
		&model.SplitModel{},
		&model.BudgetModel{},
		&model.PlannedTransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis connection; the API runs without caching if it fails
	var redisClient *redis.Client
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, report caching disabled", "error", err)
	} else {
		if cfg.Redis.Password != "" {
			redisOpts.Password = cfg.Redis.Password
		}
		redisOpts.DB = cfg.Redis.DB

		client := redis.NewClient(redisOpts)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			slog.Warn("Redis connection failed, report caching disabled", "error", err)
		} else {
			redisClient = client
			slog.Info("Redis connection established")
		}
		cancel()
	}
	defer func() {
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close Redis connection", "error", err)
			}
		}
	}()

	// Wire dependencies and setup router
	injector := dependency.NewInjector(cfg, database.DB(), redisClient)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
