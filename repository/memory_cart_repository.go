package repository

import (
	"context"
	"sync"
	"time"

	"storefront/models"
)

// MemoryCartRepository keeps carts in process memory. This is the default
// backend: cart lifetime is bound to the running session and nothing
// survives a restart.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

// NewMemoryCartRepository creates an empty in-memory cart store.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

func (r *MemoryCartRepository) Get(_ context.Context, sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, nil
	}
	// Copy so callers never mutate the stored cart in place.
	clone := *cart
	clone.Items = make([]models.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone, nil
}

func (r *MemoryCartRepository) Save(_ context.Context, cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.UpdatedAt = time.Now()
	clone := *cart
	clone.Items = make([]models.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	r.carts[cart.SessionID] = &clone
	return nil
}

func (r *MemoryCartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
