package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/api/handlers"
	"github.com/foodtuck/storefront-api/internal/api/middleware"
	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/config"
	"github.com/foodtuck/storefront-api/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog and contact (no session required)
		v1.GET("/products", handlers.HandleListProducts(cfg, logger))
		v1.GET("/products/:slug", handlers.HandleGetProduct(cfg, logger))
		v1.POST("/contact", handlers.HandleContactSubmit(cfg, logger))

		// Cart routes (require a session, minted on first contact)
		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.SessionMiddleware(logger))
		{
			cartRoutes.GET("", handlers.HandleGetCart(repos, notifier, logger))
			cartRoutes.GET("/count", handlers.HandleCartCount(repos, notifier, logger))
			cartRoutes.POST("/items", handlers.HandleAddItem(repos, notifier, logger))
			cartRoutes.PUT("/items/:index", handlers.HandleSetQuantity(repos, notifier, logger))
			cartRoutes.DELETE("/items/:index", handlers.HandleRemoveItem(repos, notifier, logger))
			cartRoutes.POST("/coupon", handlers.HandleApplyCoupon(repos, notifier, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
