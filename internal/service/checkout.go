package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Nghalu/KingdomFarming/pkg/errors"

	"github.com/Nghalu/KingdomFarming/internal/domain"
	"github.com/Nghalu/KingdomFarming/internal/event"
	"github.com/Nghalu/KingdomFarming/internal/provider"
	"github.com/Nghalu/KingdomFarming/internal/repository"
)

// DeliveryInput holds the parameters for choosing how the order reaches
// the consumer.
type DeliveryInput struct {
	Option         string `json:"option" validate:"required"`
	Address        string `json:"address"`
	PickupLocation string `json:"pickup_location"`
}

// PaymentMethodInput holds the parameters for choosing how the order is paid.
type PaymentMethodInput struct {
	Method string `json:"method" validate:"required"`
	Phone  string `json:"phone"`
}

// PaymentRedirect is handed to the consumer when the payable amount is
// passed to the gateway: the updated session plus the gateway's hosted
// payment page.
type PaymentRedirect struct {
	Session     *domain.CheckoutSession `json:"session"`
	PaymentLink string                  `json:"payment_link"`
}

// CheckoutService orchestrates the checkout flow: review, delivery and
// payment selection, the gateway hop, and order creation on success.
type CheckoutService struct {
	sessions repository.CheckoutRepository
	carts    repository.CartRepository
	orders   repository.OrderRepository
	gateway  provider.Provider
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sessions repository.CheckoutRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	gateway provider.Provider,
	producer *event.Producer,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		carts:    carts,
		orders:   orders,
		gateway:  gateway,
		producer: producer,
		logger:   logger,
	}
}

// StartCheckout opens a checkout session over the user's current cart
// contents. The cart must not be empty.
func (s *CheckoutService) StartCheckout(ctx context.Context, userID string) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidInput("cart is empty")
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	now := time.Now().UTC()
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	session := &domain.CheckoutSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		Status:         domain.CheckoutStatusReviewing,
		Items:          items,
		Totals:         cart.Totals(),
		Currency:       cart.Currency,
		DeliveryOption: domain.DeliveryPickupFarm,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout started",
		slog.String("checkout_id", session.ID),
		slog.String("user_id", userID),
		slog.Int64("subtotal", session.Totals.Subtotal),
	)

	return session, nil
}

// GetSession retrieves a checkout session owned by the user.
func (s *CheckoutService) GetSession(ctx context.Context, userID, sessionID string) (*domain.CheckoutSession, error) {
	return s.getOwnedSession(ctx, userID, sessionID)
}

// SetDeliveryOption records how the order should reach the consumer. Only
// sessions under review can change delivery.
func (s *CheckoutService) SetDeliveryOption(ctx context.Context, userID, sessionID string, input DeliveryInput) (*domain.CheckoutSession, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusReviewing {
		return nil, apperrors.Conflict("delivery can only be changed while reviewing")
	}

	option := domain.DeliveryOption(input.Option)
	if !option.IsValid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown delivery option %q", input.Option))
	}

	session.DeliveryOption = option
	session.DeliveryAddress = ""
	session.PickupLocation = ""
	switch option {
	case domain.DeliveryHome:
		session.DeliveryAddress = input.Address
	case domain.DeliveryPickupPoint:
		session.PickupLocation = input.PickupLocation
	}
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "delivery option set",
		slog.String("checkout_id", session.ID),
		slog.String("option", string(option)),
		slog.Int64("fee", option.Fee()),
	)

	return session, nil
}

// SetPaymentMethod records how the order is paid. Only sessions under
// review can change the method.
func (s *CheckoutService) SetPaymentMethod(ctx context.Context, userID, sessionID string, input PaymentMethodInput) (*domain.CheckoutSession, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusReviewing {
		return nil, apperrors.Conflict("payment method can only be changed while reviewing")
	}

	if !domain.IsValidPaymentMethod(input.Method) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown payment method %q", input.Method))
	}

	session.PaymentMethod = input.Method
	session.Phone = input.Phone
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "payment method set",
		slog.String("checkout_id", session.ID),
		slog.String("method", input.Method),
	)

	return session, nil
}

// ProceedToPayment validates the session and hands the payable amount to
// the payment gateway. Home delivery requires an address; every order
// requires a contact phone number.
func (s *CheckoutService) ProceedToPayment(ctx context.Context, userID, sessionID string) (*PaymentRedirect, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusReviewing {
		return nil, apperrors.Conflict("checkout is not under review")
	}
	if len(session.Items) == 0 {
		return nil, apperrors.InvalidInput("checkout has no items")
	}
	if session.DeliveryOption == domain.DeliveryHome && session.DeliveryAddress == "" {
		return nil, apperrors.MissingDeliveryAddress()
	}
	if session.PaymentMethod == "" {
		return nil, apperrors.InvalidInput("payment method is required")
	}
	if session.Phone == "" {
		return nil, apperrors.MissingPhoneNumber()
	}

	session.PaymentRef = "KF-" + uuid.New().String()

	charge, err := s.gateway.Initiate(ctx, &provider.ChargeRequest{
		Amount:      session.PayableAmount(),
		Currency:    session.Currency,
		Method:      session.PaymentMethod,
		Phone:       session.Phone,
		Reference:   session.PaymentRef,
		Description: fmt.Sprintf("KingdomFarming order, %d items", len(session.Items)),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "initiate payment")
	}
	if charge.Status == provider.SessionStatusFailed {
		return nil, apperrors.PaymentFailed(charge.FailureReason)
	}

	session.ProviderTxID = charge.ProviderRef
	session.Status = domain.CheckoutStatusAwaitingPayment
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "payment initiated",
		slog.String("checkout_id", session.ID),
		slog.String("provider", s.gateway.Name()),
		slog.String("payment_ref", session.PaymentRef),
		slog.Int64("amount", session.PayableAmount()),
	)

	return &PaymentRedirect{Session: session, PaymentLink: charge.PaymentLink}, nil
}

// CompletePayment records the gateway's success signal: the order is
// created with its farmer payouts, the cart is emptied, and the session
// finishes. A providerTxID from the success callback replaces the one
// captured at initiation; an empty value keeps it.
func (s *CheckoutService) CompletePayment(ctx context.Context, userID, sessionID, providerTxID string) (*domain.Order, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusAwaitingPayment {
		return nil, apperrors.Conflict("checkout is not awaiting payment")
	}
	if providerTxID != "" {
		session.ProviderTxID = providerTxID
	}

	now := time.Now().UTC()

	items := make([]domain.OrderItem, len(session.Items))
	for i, ci := range session.Items {
		items[i] = domain.NewOrderItem(ci)
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          session.UserID,
		Status:          domain.OrderStatusPending,
		Items:           items,
		Subtotal:        session.Totals.Subtotal,
		Commission:      session.Totals.Commission,
		Total:           session.Totals.Total,
		DeliveryOption:  session.DeliveryOption,
		DeliveryFee:     session.DeliveryFee(),
		DeliveryAddress: session.DeliveryAddress,
		PickupLocation:  session.PickupLocation,
		PaymentMethod:   session.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPaid,
		PaymentRef:      session.PaymentRef,
		ProviderTxID:    session.ProviderTxID,
		Currency:        session.Currency,
		Payouts:         domain.BuildPayouts(items),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	session.Status = domain.CheckoutStatusCompleted
	session.OrderID = order.ID
	session.UpdatedAt = now
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	} else if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishCheckoutCompleted(ctx, session); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("checkout_id", session.ID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.producer.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("checkout_id", session.ID),
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Total),
		slog.Int64("commission", order.Commission),
	)

	return order, nil
}

// ClosePayment abandons the gateway hop and returns the session to review.
// Nothing is charged and the cart is untouched.
func (s *CheckoutService) ClosePayment(ctx context.Context, userID, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.CheckoutStatusAwaitingPayment {
		return nil, apperrors.Conflict("checkout is not awaiting payment")
	}

	session.Status = domain.CheckoutStatusReviewing
	session.PaymentRef = ""
	session.ProviderTxID = ""
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "payment closed, back to review",
		slog.String("checkout_id", session.ID),
	)

	return session, nil
}

// Cancel abandons the checkout. Completed sessions cannot be cancelled.
func (s *CheckoutService) Cancel(ctx context.Context, userID, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsTerminal() {
		return nil, apperrors.Conflict("checkout is already finished")
	}

	session.Status = domain.CheckoutStatusCancelled
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update checkout session: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout cancelled",
		slog.String("checkout_id", session.ID),
	)

	return session, nil
}

func (s *CheckoutService) getOwnedSession(ctx context.Context, userID, sessionID string) (*domain.CheckoutSession, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if sessionID == "" {
		return nil, apperrors.InvalidInput("checkout id is required")
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	if session.UserID != userID {
		return nil, apperrors.Forbidden("checkout belongs to another user")
	}
	return session, nil
}
