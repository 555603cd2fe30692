package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
)

type cartSlotRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCartSlotRepository creates a new postgres cart slot repository
func NewCartSlotRepository(db *sql.DB, logger *zap.Logger) *cartSlotRepository {
	return &cartSlotRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cartSlotRepository) Load(ctx context.Context, key string) (domain.CartSnapshot, error) {
	query := `
		SELECT payload
		FROM cart_slots
		WHERE slot_key = $1
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err == sql.ErrNoRows {
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

	query := `
		INSERT INTO cart_slots (slot_key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot_key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, payload, time.Now()); err != nil {
		r.logger.Error("Failed to save cart slot", zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}
