package memory

import (
	"context"
	"sync"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// CheckoutRepository implements repository.CheckoutRepository in process
// memory. Sessions live for the duration of the checkout flow only.
type CheckoutRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.CheckoutSession
}

// NewCheckoutRepository creates a new in-memory checkout session repository.
func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{
		sessions: make(map[string]*domain.CheckoutSession),
	}
}

// Create inserts a new checkout session.
func (r *CheckoutRepository) Create(_ context.Context, session *domain.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return apperrors.AlreadyExists("checkout session", "id", session.ID)
	}
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

// GetByID retrieves a checkout session by its identifier.
func (r *CheckoutRepository) GetByID(_ context.Context, id string) (*domain.CheckoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("checkout session", id)
	}
	return cloneSession(s), nil
}

// Update modifies an existing checkout session.
func (r *CheckoutRepository) Update(_ context.Context, session *domain.CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return apperrors.NotFound("checkout session", session.ID)
	}
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func cloneSession(s *domain.CheckoutSession) *domain.CheckoutSession {
	cp := *s
	cp.Items = make([]domain.CartItem, len(s.Items))
	copy(cp.Items, s.Items)
	return &cp
}
