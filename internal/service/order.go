package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/repository"
)

// OrderService implements order history, fulfilment status changes, and
// the admin analytics rollup.
type OrderService struct {
	orders   repository.OrderRepository
	farms    repository.FarmRepository
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, farms repository.FarmRepository, products repository.ProductRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders:   orders,
		farms:    farms,
		products: products,
		logger:   logger,
	}
}

// GetOrder retrieves an order. Consumers can only see their own orders;
// admins can see any.
func (s *OrderService) GetOrder(ctx context.Context, userID, role, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if domain.Role(role) != domain.RoleAdmin && order.UserID != userID {
		return nil, apperrors.Forbidden("order belongs to another user")
	}
	return order, nil
}

// ListUserOrders returns the user's order history, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListAllOrders returns every order in the book, newest first.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along its fulfilment lifecycle.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	valid := false
	for _, st := range domain.ValidOrderStatuses() {
		if st == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown order status %q", status))
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !order.CanTransitionTo(status) {
		return nil, apperrors.Conflict(fmt.Sprintf("cannot move order from %s to %s", order.Status, status))
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", order.ID),
		slog.String("status", status),
	)

	return order, nil
}

// Analytics aggregates platform-wide figures for the admin dashboard.
func (s *OrderService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	farms, err := s.farms.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	_, totalProducts, err := s.products.List(ctx, domain.ProductFilter{}, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	a := &domain.Analytics{
		TotalFarms:    len(farms),
		TotalProducts: totalProducts,
		TotalOrders:   len(orders),
	}
	for _, o := range orders {
		if o.Status == domain.OrderStatusCancelled {
			continue
		}
		a.TotalRevenue += o.Total
		a.TotalCommission += o.Commission
		a.TotalFarmerEarnings += o.Subtotal - o.Commission
	}
	return a, nil
}
