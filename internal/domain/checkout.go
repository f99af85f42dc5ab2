package domain

import "time"

// Checkout session status constants.
//
// A session starts in reviewing, moves to awaiting_payment once the payable
// amount has been handed to the gateway, and finishes in completed on the
// gateway's explicit success signal. Closing the payment dialog returns the
// session to reviewing; cancelled is reachable from either pre-completed
// state.
const (
	CheckoutStatusReviewing       = "reviewing"
	CheckoutStatusAwaitingPayment = "awaiting_payment"
	CheckoutStatusCompleted       = "completed"
	CheckoutStatusCancelled       = "cancelled"
)

// CheckoutSession represents an ongoing checkout for one consumer.
type CheckoutSession struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Status          string         `json:"status"`
	Items           []CartItem     `json:"items"`
	Totals          OrderTotals    `json:"totals"`
	Currency        string         `json:"currency"`
	DeliveryOption  DeliveryOption `json:"delivery_option"`
	DeliveryAddress string         `json:"delivery_address,omitempty"`
	PickupLocation  string         `json:"pickup_location,omitempty"`
	PaymentMethod   string         `json:"payment_method"`
	Phone           string         `json:"phone,omitempty"`
	PaymentRef      string         `json:"payment_ref,omitempty"`
	ProviderTxID    string         `json:"provider_tx_id,omitempty"`
	OrderID         string         `json:"order_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// DeliveryFee returns the flat fee for the selected delivery option.
func (s *CheckoutSession) DeliveryFee() int64 {
	return s.DeliveryOption.Fee()
}

// PayableAmount is the final amount handed to the payment gateway: the
// order total plus the delivery fee.
func (s *CheckoutSession) PayableAmount() int64 {
	return s.Totals.Total + s.DeliveryFee()
}

// IsTerminal returns true if the session is in a final state.
func (s *CheckoutSession) IsTerminal() bool {
	return s.Status == CheckoutStatusCompleted || s.Status == CheckoutStatusCancelled
}

// ValidCheckoutStatuses returns the set of valid checkout session statuses.
func ValidCheckoutStatuses() []string {
	return []string{
		CheckoutStatusReviewing,
		CheckoutStatusAwaitingPayment,
		CheckoutStatusCompleted,
		CheckoutStatusCancelled,
	}
}
