package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/repository/memory"
)

type orderFixture struct {
	checkout *checkoutFixture
	orders   *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := newCheckoutFixture(t)
	farms, products := newTestCatalog(t)
	return &orderFixture{
		checkout: f,
		orders:   NewOrderService(f.orders, farms, products, newTestLogger()),
	}
}

// placeOrder drives a full checkout for the user and returns the order.
func (f *orderFixture) placeOrder(t *testing.T, userID string) *domain.Order {
	t.Helper()
	session := f.checkout.toAwaitingPayment(t, userID)
	order, err := f.checkout.checkout.CompletePayment(context.Background(), userID, session.ID, "")
	require.NoError(t, err)
	return order
}

func TestGetOrder_OwnerAndAdmin(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t, "user-1")

	got, err := f.orders.GetOrder(ctx, "user-1", "consumer", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = f.orders.GetOrder(ctx, "user-2", "consumer", order.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	got, err = f.orders.GetOrder(ctx, "admin-1", "admin", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestListUserOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.placeOrder(t, "user-1")
	f.placeOrder(t, "user-2")

	mine, err := f.orders.ListUserOrders(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, "user-1", mine[0].UserID)

	all, err := f.orders.ListAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t, "user-1")

	updated, err := f.orders.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)

	// Skipping steps is rejected.
	_, err = f.orders.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// Unknown statuses are rejected outright.
	_, err = f.orders.UpdateOrderStatus(ctx, order.ID, "limbo")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAnalytics(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.placeOrder(t, "user-1")
	f.placeOrder(t, "user-2")

	analytics, err := f.orders.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.TotalFarms)
	assert.Equal(t, 6, analytics.TotalProducts)
	assert.Equal(t, 2, analytics.TotalOrders)
	// Each order: subtotal 95, commission 10.
	assert.Equal(t, int64(190), analytics.TotalRevenue)
	assert.Equal(t, int64(20), analytics.TotalCommission)
	assert.Equal(t, int64(170), analytics.TotalFarmerEarnings)
}

func TestAnalytics_SkipsCancelledOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.placeOrder(t, "user-1")

	_, err := f.orders.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusCancelled)
	require.NoError(t, err)

	analytics, err := f.orders.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, analytics.TotalOrders)
	assert.Equal(t, int64(0), analytics.TotalRevenue)
	assert.Equal(t, int64(0), analytics.TotalCommission)
}

func TestOrderBook_Update(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	err := repo.Update(ctx, &domain.Order{ID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
