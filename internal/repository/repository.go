package repository

import (
	"context"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// CartRepository defines the interface for cart storage. Carts are scoped
// to a user; a missing cart is reported as a not-found error.
type CartRepository interface {
	// Get retrieves a cart by its user ID.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for the user. Deleting an absent cart is not
	// an error.
	Delete(ctx context.Context, userID string) error
}

// ProductRepository defines the interface for catalog product storage.
type ProductRepository interface {
	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns products matching the filter, paginated by offset and
	// limit, along with the total match count.
	List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int, error)

	// Create inserts a new product into the catalog.
	Create(ctx context.Context, product *domain.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *domain.Product) error
}

// FarmRepository defines the interface for farm profile storage.
type FarmRepository interface {
	// GetByID retrieves a farm by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Farm, error)

	// GetByFarmerID retrieves the farm owned by the given farmer.
	GetByFarmerID(ctx context.Context, farmerID string) (*domain.Farm, error)

	// List returns all farms, optionally restricted to a district.
	List(ctx context.Context, district string) ([]domain.Farm, error)

	// Create inserts a new farm profile.
	Create(ctx context.Context, farm *domain.Farm) error
}

// CheckoutRepository defines the interface for checkout session storage.
type CheckoutRepository interface {
	// Create inserts a new checkout session.
	Create(ctx context.Context, session *domain.CheckoutSession) error

	// GetByID retrieves a checkout session by its identifier.
	GetByID(ctx context.Context, id string) (*domain.CheckoutSession, error)

	// Update modifies an existing checkout session.
	Update(ctx context.Context, session *domain.CheckoutSession) error
}

// OrderRepository defines the interface for the order book.
type OrderRepository interface {
	// Create inserts a new order.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its identifier.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	// Update modifies an existing order.
	Update(ctx context.Context, order *domain.Order) error

	// ListByUser returns all orders placed by the given user, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// List returns every order in the book, newest first.
	List(ctx context.Context) ([]domain.Order, error)
}
