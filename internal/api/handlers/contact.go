package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/config"
	"github.com/foodtuck/storefront-api/internal/mail"
	"github.com/foodtuck/storefront-api/internal/service"
)

// HandleContactSubmit handles POST /v1/contact. The relay outcome is always
// reported as a success flag plus message with a 200 status; delivery failure
// is not an HTTP error.
func HandleContactSubmit(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		contactService := service.NewContactService(mail.NewClient(cfg.Mail, logger), logger)
		result := contactService.Send(c.Request.Context(), req)

		c.JSON(http.StatusOK, result)
	}
}
