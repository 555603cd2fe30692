package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/internal/repository"
)

type cartSlotRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCartSlotRepository creates a redis-backed cart slot repository.
// Slots are stored without a TTL: the cart survives until overwritten.
func NewCartSlotRepository(client *redis.Client, logger *zap.Logger) *cartSlotRepository {
	return &cartSlotRepository{
		client: client,
		logger: logger,
	}
}

func (r *cartSlotRepository) Load(ctx context.Context, key string) (domain.CartSnapshot, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return domain.CartSnapshot{}, nil
	}
	if err != nil {
		r.logger.Error("Failed to load cart slot", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	snapshot, err := cart.DecodeSnapshot(payload)
	if err != nil {
		// Malformed persisted state is recovered locally, never surfaced
		r.logger.Warn("Discarding malformed cart payload", zap.String("key", key), zap.Error(err))
		return domain.CartSnapshot{}, nil
	}

	return cart.Normalize(snapshot), nil
}

func (r *cartSlotRepository) Save(ctx context.Context, key string, snapshot domain.CartSnapshot) error {
	payload, err := cart.EncodeSnapshot(snapshot)
	if err != nil {
		r.logger.Error("Failed to encode cart snapshot", zap.String("key", key), zap.Error(err))
		return err
	}

	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		r.logger.Error("Failed to save cart slot", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

// NewRepositories creates redis-backed repositories
func NewRepositories(client *redis.Client, logger *zap.Logger) *repository.Repositories {
	return &repository.Repositories{
		CartSlot: NewCartSlotRepository(client, logger),
	}
}
