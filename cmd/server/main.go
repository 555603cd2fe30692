package main

import (
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/api"
	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/config"
	"github.com/foodtuck/storefront-api/internal/repository"
	"github.com/foodtuck/storefront-api/internal/repository/postgres"
	redisrepo "github.com/foodtuck/storefront-api/internal/repository/redis"
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
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Select the cart slot backend
	var repos *repository.Repositories
	switch cfg.CartBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		repos = redisrepo.NewRepositories(client, logger)
	default:
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := postgres.EnsureSchema(db); err != nil {
			logger.Fatal("Failed to ensure schema", zap.Error(err))
		}
		repos = postgres.NewRepositories(db, logger)
	}

	// Cart mutation events keep dependent components (badge, logs) in sync
	notifier := cart.NewNotifier()
	notifier.Subscribe(func(e cart.Event) {
		logger.Info("Cart updated",
			zap.String("slot", e.SlotKey),
			zap.Int("items", e.ItemCount),
			zap.Int("quantity", e.TotalQuantity),
		)
	})

	router := api.NewRouter(cfg, repos, notifier, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("cart_backend", cfg.CartBackend),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
