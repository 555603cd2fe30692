package memory

import (
	"context"
	"sync"

	"github.com/foodtuck/storefront-api/internal/cart"
	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/internal/repository"
)

// cartSlotRepository keeps cart slots in process memory. Used for local
// development and tests; payloads go through the same wire codec as the
// durable backends so behavior matches.
type cartSlotRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewCartSlotRepository creates an in-memory cart slot repository
func NewCartSlotRepository() *cartSlotRepository {
	return &cartSlotRepository{
		slots: make(map[string][]byte),
	}
}

func (r *cartSlotRepository) Load(ctx context.Context, key string) (domain.CartSnapshot, error) {
	r.mu.RLock()
	payload, ok := r.slots[key]
	r.mu.RUnlock()

	if !ok {
		return domain.CartSnapshot{}, nil
	}

	snapshot, err := cart.DecodeSnapshot(payload)
	if err != nil {
		return domain.CartSnapshot{}, nil
	}

	return cart.Normalize(snapshot), nil
}

func (r *cartSlotRepository) Save(ctx context.Context, key string, snapshot domain.CartSnapshot) error {
	payload, err := cart.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.slots[key] = payload
	r.mu.Unlock()

	return nil
}

// Seed stores a raw payload under a key, bypassing the codec. Lets tests
// exercise recovery from malformed persisted state.
func (r *cartSlotRepository) Seed(key string, payload []byte) {
	r.mu.Lock()
	r.slots[key] = payload
	r.mu.Unlock()
}

// NewRepositories creates memory-backed repositories
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		CartSlot: NewCartSlotRepository(),
	}
}
