package cart

import (
	"sync"
)

// Event describes the cart state after a mutation.
type Event struct {
	SlotKey       string
	ItemCount     int
	TotalQuantity int
}

// Notifier fans out cart mutation events to in-process subscribers so
// components that track cart state (such as the quantity badge) stay in sync
// without re-reading the store.
type Notifier struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewNotifier creates a new notifier with no subscribers
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers a callback invoked synchronously on every published
// event. Callbacks must not block.
func (n *Notifier) Subscribe(fn func(Event)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Publish delivers the event to all current subscribers
func (n *Notifier) Publish(event Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.subscribers {
		fn(event)
	}
}
