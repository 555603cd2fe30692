package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/mail"
)

type contactService struct {
	client *mail.Client
	logger *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(client *mail.Client, logger *zap.Logger) *contactService {
	return &contactService{
		client: client,
		logger: logger,
	}
}

// Send relays a contact-form message. The outcome is always a boolean plus a
// human-readable message, never an error.
func (s *contactService) Send(ctx context.Context, req ContactRequest) mail.SendResult {
	result := s.client.Send(ctx, req.Name, req.Email, req.Message)
	if !result.Success {
		s.logger.Warn("Contact message not delivered", zap.String("from", req.Email))
	}
	return result
}
