package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/content"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/pkg/errors"
)

type catalogService struct {
	client *content.Client
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client *content.Client, logger *zap.Logger) *catalogService {
	return &catalogService{
		client: client,
		logger: logger,
	}
}

// ListProducts fetches the full product catalog from the content source
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	result, err := s.client.Query(ctx, content.ProductsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(result, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products: %w", err)
	}

	return products, nil
}

// GetProductBySlug fetches a single product for a detail page
func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	result, err := s.client.Query(ctx, content.ProductBySlugQuery, map[string]string{"slug": slug})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	// A query with no match returns a JSON null result
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, &errors.ErrNotFound{Resource: "product", ID: slug}
	}

	var product domain.Product
	if err := json.Unmarshal(result, &product); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return &product, nil
}
