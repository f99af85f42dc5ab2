package memory

import (
	"context"
	"sync"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// CartRepository implements repository.CartRepository in process memory.
// Carts live only as long as the process; the marketplace deliberately has
// no backing store for them.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates a new in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

// Get retrieves a cart by user ID.
func (r *CartRepository) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[userID]
	if !ok {
		return nil, apperrors.NotFound("cart", userID)
	}
	return cloneCart(cart), nil
}

// Save persists a cart, overwriting any existing cart for the user.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.UserID] = cloneCart(cart)
	return nil
}

// Delete removes the cart for the user. Absent carts are ignored.
func (r *CartRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}

// cloneCart copies a cart so callers cannot mutate stored state through
// shared slices.
func cloneCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = make([]domain.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
