package repository

import (
	"context"

	"github.com/foodtuck/storefront-api/internal/domain"
)

// CartSlotRepository persists cart snapshots in a named durable slot, one
// slot per session. Load never fails on malformed content: missing, empty or
// non-array payloads come back as an empty snapshot, and every loaded item is
// normalized so its quantity is at least 1. A completed Save must be visible
// to the next Load on the same key.
type CartSlotRepository interface {
	Load(ctx context.Context, key string) (domain.CartSnapshot, error)
	Save(ctx context.Context, key string, snapshot domain.CartSnapshot) error
}

// Repositories holds all repository implementations
type Repositories struct {
	CartSlot CartSlotRepository
}
