// main.go
package main

import (
	"context"
	"log"
	"time"

	"movie-storefront/cmd"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/queue"
	"movie-storefront/internal/wire"
	"movie-storefront/pkg/database"
	"movie-storefront/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to Redis (optional; drafts are disabled when unreachable)
	rdb := database.InitRedis(config.Redis)
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Warn("Redis unreachable, booking drafts disabled")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, config, logger)

	// Event publisher (optional; empty URL disables it)
	publisher := queue.NewPublisher(config.Queue.URL, logger)
	if publisher.Enabled() {
		logger.Info("Event publisher enabled")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, publisher, logger)

	// Expire stale pending bookings in the background so abandoned
	// checkouts release their seats
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := app.Service.Booking.ExpireStaleBookings(ctx); err != nil {
				logger.Warn("Stale booking sweep failed", zap.Error(err))
			} else if n > 0 {
				logger.Info("Stale bookings expired", zap.Int("count", n))
			}
			cancel()
		}
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
