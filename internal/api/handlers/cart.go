package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/api/middleware"
	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/internal/repository"
	"github.com/foodtuck/storefront-api/internal/service"
)

// slotKey derives the durable cart slot name from a session ID
func slotKey(sessionID string) string {
	return "cart:" + sessionID
}

// HandleGetCart handles GET /v1/cart?coupon=CODE
func HandleGetCart(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		cartService := service.NewCartService(repos, notifier, logger)
		view, err := cartService.View(c.Request.Context(), slotKey(sessionID), c.Query("coupon"))
		if err != nil {
			logger.Error("Failed to load cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

// HandleAddItem handles POST /v1/cart/items
func HandleAddItem(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		var req service.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		item := domain.LineItem{
			ID:       req.ID,
			Name:     req.Name,
			Price:    decimal.NewFromFloat(req.Price),
			ImageURL: req.ImageURL,
			Quantity: req.Quantity,
		}

		cartService := service.NewCartService(repos, notifier, logger)
		updated, err := cartService.AddItem(c.Request.Context(), slotKey(sessionID), item)
		if err != nil {
			logger.Error("Failed to add cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
			return
		}

		c.JSON(http.StatusOK, cartService.BuildView(updated, c.Query("coupon")))
	}
}

// HandleSetQuantity handles PUT /v1/cart/items/:index
func HandleSetQuantity(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
			return
		}

		var req service.SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cartService := service.NewCartService(repos, notifier, logger)
		updated, err := cartService.SetQuantity(c.Request.Context(), slotKey(sessionID), index, req.Quantity)
		if err != nil {
			logger.Error("Failed to set quantity", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, cartService.BuildView(updated, c.Query("coupon")))
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:index
func HandleRemoveItem(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
			return
		}

		cartService := service.NewCartService(repos, notifier, logger)
		updated, err := cartService.RemoveItem(c.Request.Context(), slotKey(sessionID), index)
		if err != nil {
			logger.Error("Failed to remove cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, cartService.BuildView(updated, c.Query("coupon")))
	}
}

// HandleApplyCoupon handles POST /v1/cart/coupon
func HandleApplyCoupon(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		var req service.CouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cartService := service.NewCartService(repos, notifier, logger)
		view, err := cartService.View(c.Request.Context(), slotKey(sessionID), req.Code)
		if err != nil {
			logger.Error("Failed to load cart for coupon", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":          req.Code,
			"discount_rate": view.Summary.DiscountRate,
			"summary":       view.Summary,
		})
	}
}

// HandleCartCount handles GET /v1/cart/count
func HandleCartCount(repos *repository.Repositories, notifier *cart.Notifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		cartService := service.NewCartService(repos, notifier, logger)
		quantity, err := cartService.Quantity(c.Request.Context(), slotKey(sessionID))
		if err != nil {
			logger.Error("Failed to count cart items", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"quantity": quantity})
	}
}
