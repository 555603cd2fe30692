package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/config"
	"github.com/foodtuck/storefront-api/internal/content"
	"github.com/foodtuck/storefront-api/internal/service"
	"github.com/foodtuck/storefront-api/pkg/errors"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalogService := service.NewCatalogService(content.NewClient(cfg.Content, logger), logger)

		products, err := catalogService.ListProducts(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch products", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "menu is unavailable right now"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct handles GET /v1/products/:slug
func HandleGetProduct(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		catalogService := service.NewCatalogService(content.NewClient(cfg.Content, logger), logger)

		product, err := catalogService.GetProductBySlug(c.Request.Context(), slug)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			logger.Error("Failed to fetch product", zap.String("slug", slug), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "product is unavailable right now"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
