package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/Nghalu/KingdomFarming/pkg/kafka"

	"github.com/Nghalu/KingdomFarming/internal/domain"
)

// Kafka topic constants for marketplace domain events.
const (
	TopicCartUpdated       = "kingdomfarming.cart.updated"
	TopicCartCleared       = "kingdomfarming.cart.cleared"
	TopicCheckoutCompleted = "kingdomfarming.checkout.completed"
	TopicOrderPlaced       = "kingdomfarming.order.placed"
)

// Aggregate type constants.
const (
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
	AggregateTypeOrder    = "order"
)

// Source identifier for events originating from the marketplace service.
const SourceMarketplace = "marketplace"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	UserID    string         `json:"user_id"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  int64          `json:"subtotal"`
	Currency  string         `json:"currency"`
}

// CartItemData is the item payload within cart events.
type CartItemData struct {
	ProductID string `json:"product_id"`
	FarmerID  string `json:"farmer_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	CheckoutID     string `json:"checkout_id"`
	UserID         string `json:"user_id"`
	OrderID        string `json:"order_id"`
	PaymentMethod  string `json:"payment_method"`
	DeliveryOption string `json:"delivery_option"`
	AmountPaid     int64  `json:"amount_paid"`
	Currency       string `json:"currency"`
}

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	OrderID    string           `json:"order_id"`
	UserID     string           `json:"user_id"`
	Subtotal   int64            `json:"subtotal"`
	Commission int64            `json:"commission"`
	Total      int64            `json:"total"`
	Currency   string           `json:"currency"`
	Payouts    []OrderPayoutData `json:"payouts"`
}

// OrderPayoutData is the per-farmer payout payload within order events.
type OrderPayoutData struct {
	FarmerID string `json:"farmer_id"`
	Amount   int64  `json:"amount"`
}

// Producer publishes marketplace domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the marketplace.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductID: item.ProductID,
			FarmerID:  item.FarmerID,
			Name:      item.Name,
			Unit:      item.Unit,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	data := CartUpdatedData{
		UserID:    cart.UserID,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
		Currency:  cart.Currency,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.UserID, AggregateTypeCart, SourceMarketplace, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("user_id", cart.UserID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, userID string) error {
	data := CartClearedData{UserID: userID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, userID, AggregateTypeCart, SourceMarketplace, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("user_id", userID),
	)

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, session *domain.CheckoutSession) error {
	data := CheckoutCompletedData{
		CheckoutID:     session.ID,
		UserID:         session.UserID,
		OrderID:        session.OrderID,
		PaymentMethod:  session.PaymentMethod,
		DeliveryOption: string(session.DeliveryOption),
		AmountPaid:     session.PayableAmount(),
		Currency:       session.Currency,
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, session.ID, AggregateTypeCheckout, SourceMarketplace, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("checkout_id", session.ID),
		slog.String("order_id", session.OrderID),
	)

	return nil
}

// PublishOrderPlaced publishes an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	payouts := make([]OrderPayoutData, len(order.Payouts))
	for i, po := range order.Payouts {
		payouts[i] = OrderPayoutData{
			FarmerID: po.FarmerID,
			Amount:   po.Amount,
		}
	}

	data := OrderPlacedData{
		OrderID:    order.ID,
		UserID:     order.UserID,
		Subtotal:   order.Subtotal,
		Commission: order.Commission,
		Total:      order.Total,
		Currency:   order.Currency,
		Payouts:    payouts,
	}

	event, err := pkgkafka.NewEvent(TopicOrderPlaced, order.ID, AggregateTypeOrder, SourceMarketplace, data)
	if err != nil {
		return fmt.Errorf("create order.placed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderPlaced, event); err != nil {
		return fmt.Errorf("publish order.placed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.placed event",
		slog.String("order_id", order.ID),
		slog.String("user_id", order.UserID),
	)

	return nil
}
