package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/bazaarph/marketplace-api/internal/api"
	"github.com/bazaarph/marketplace-api/internal/config"
	"github.com/bazaarph/marketplace-api/internal/events"
	"github.com/bazaarph/marketplace-api/internal/migrations"
	"github.com/bazaarph/marketplace-api/internal/repository/postgres"
	"github.com/bazaarph/marketplace-api/internal/tracking"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Apply pending migrations
	if err := migrations.Up(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := postgres.NewRepositories(db, logger)

	// Status event stream is optional; without brokers events are dropped.
	publisher := events.NewNoopPublisher()
	if cfg.Kafka.Brokers != "" {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	}
	defer publisher.Close()

	// Carrier tracking proxy is optional as well.
	var carrier *tracking.Client
	if cfg.Tracking.BaseURL != "" {
		ttl, err := time.ParseDuration(cfg.Tracking.CacheTTL)
		if err != nil {
			logger.Warn("Invalid TRACKING_CACHE_TTL, using 5m", zap.Error(err))
			ttl = 5 * time.Minute
		}
		carrier = tracking.NewClient(cfg.Tracking.BaseURL, ttl, logger)
	}

	router := api.NewRouter(cfg, repos, publisher, carrier, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
