package domain

import "time"

// Order status constants.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status constants for an order.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order represents a confirmed purchase, created when a checkout completes.
type Order struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Status          string         `json:"status"`
	Items           []OrderItem    `json:"items"`
	Subtotal        int64          `json:"subtotal"`
	Commission      int64          `json:"commission"`
	Total           int64          `json:"total"`
	DeliveryOption  DeliveryOption `json:"delivery_option"`
	DeliveryFee     int64          `json:"delivery_fee"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	PickupLocation  string         `json:"pickup_location,omitempty"`
	PaymentMethod   string         `json:"payment_method"`
	PaymentStatus   string         `json:"payment_status"`
	PaymentRef      string         `json:"payment_ref,omitempty"`
	ProviderTxID    string         `json:"provider_tx_id,omitempty"`
	Currency        string         `json:"currency"`
	Payouts         []FarmerPayout `json:"payouts"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OrderItem is a line item with the price frozen at order time. The
// per-item commission and earnings are informational; the authoritative
// split lives on the order and its payouts.
type OrderItem struct {
	ProductID      string `json:"product_id"`
	FarmID         string `json:"farm_id"`
	FarmerID       string `json:"farmer_id"`
	Name           string `json:"name"`
	Unit           string `json:"unit"`
	Price          int64  `json:"price"`
	Quantity       int    `json:"quantity"`
	Subtotal       int64  `json:"subtotal"`
	Commission     int64  `json:"commission"`
	FarmerEarnings int64  `json:"farmer_earnings"`
}

// FarmerPayout is one farmer's 90% share of their line totals in an order.
type FarmerPayout struct {
	FarmerID string `json:"farmer_id"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
}

// Payout status constants.
const (
	PayoutStatusPending = "pending"
	PayoutStatusPaid    = "paid"
)

// NewOrderItem builds an order line from a cart item, computing the
// informational commission split.
func NewOrderItem(ci CartItem) OrderItem {
	lineTotal := ci.LineTotal()
	commission := CommissionFor(lineTotal)
	return OrderItem{
		ProductID:      ci.ProductID,
		FarmID:         ci.FarmID,
		FarmerID:       ci.FarmerID,
		Name:           ci.Name,
		Unit:           ci.Unit,
		Price:          ci.Price,
		Quantity:       ci.Quantity,
		Subtotal:       lineTotal,
		Commission:     commission,
		FarmerEarnings: lineTotal - commission,
	}
}

// BuildPayouts groups order items by farmer and computes each farmer's
// share: their line totals less the commission on that amount. Payouts are
// returned in the order farmers first appear in the items.
func BuildPayouts(items []OrderItem) []FarmerPayout {
	byFarmer := make(map[string]int64, len(items))
	var order []string
	for _, item := range items {
		if _, seen := byFarmer[item.FarmerID]; !seen {
			order = append(order, item.FarmerID)
		}
		byFarmer[item.FarmerID] += item.Subtotal
	}

	payouts := make([]FarmerPayout, 0, len(order))
	for _, farmerID := range order {
		subtotal := byFarmer[farmerID]
		payouts = append(payouts, FarmerPayout{
			FarmerID: farmerID,
			Amount:   subtotal - CommissionFor(subtotal),
			Status:   PayoutStatusPending,
		})
	}
	return payouts
}

// ValidOrderStatuses returns all valid order statuses.
func ValidOrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// AllowedOrderTransitions defines which status transitions are valid.
func AllowedOrderTransitions() map[string][]string {
	return map[string][]string{
		OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
		OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:    {OrderStatusDelivered},
		OrderStatusDelivered:  {},
		OrderStatusCancelled:  {},
	}
}

// CanTransitionTo checks if the order can transition to the target status.
func (o *Order) CanTransitionTo(target string) bool {
	allowed, ok := AllowedOrderTransitions()[o.Status]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}
