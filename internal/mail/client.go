package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/config"
)

const relayEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Client sends contact-form messages through the EmailJS relay. Every outcome
// is reduced to a success flag plus a human-readable message; transport
// failures never propagate as faults.
type Client struct {
	cfg        config.MailConfig
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new mail relay client
func NewClient(cfg config.MailConfig, logger *zap.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = relayEndpoint
	}

	return &Client{
		cfg:      cfg,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// relayRequest is the relay API request body
type relayRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	ToEmail   string `json:"to_email"`
	Message   string `json:"message"`
}

// SendResult reports the outcome of a send attempt
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send relays a contact message. HTTP OK means success; any non-OK status or
// network error is reported back as a failed SendResult.
func (c *Client) Send(ctx context.Context, fromName, fromEmail, message string) SendResult {
	reqBody := relayRequest{
		ServiceID:  c.cfg.ServiceID,
		TemplateID: c.cfg.TemplateID,
		UserID:     c.cfg.UserID,
		TemplateParams: templateParams{
			FromName:  fromName,
			FromEmail: fromEmail,
			ToEmail:   c.cfg.ToEmail,
			Message:   message,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("Failed to marshal relay request", zap.Error(err))
		return SendResult{Success: false, Message: "An error occurred. Please try again later."}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		c.logger.Error("Failed to create relay request", zap.Error(err))
		return SendResult{Success: false, Message: "An error occurred. Please try again later."}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to reach mail relay", zap.Error(err))
		return SendResult{Success: false, Message: "An error occurred. Please try again later."}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Mail relay rejected message", zap.Int("status", resp.StatusCode))
		return SendResult{Success: false, Message: "Failed to send message. Please try again."}
	}

	return SendResult{Success: true, Message: "Message sent successfully!"}
}
