package domain

// DeliveryOption is one of the fixed fulfillment choices offered at checkout.
type DeliveryOption string

const (
	// DeliveryPickupFarm collects directly from the farm, free of charge.
	DeliveryPickupFarm DeliveryOption = "pickup-farm"
	// DeliveryPickupPoint collects at a designated pickup point in the
	// consumer's district.
	DeliveryPickupPoint DeliveryOption = "pickup-point"
	// DeliveryHome delivers to the consumer's address (within 20km).
	DeliveryHome DeliveryOption = "delivery"
)

// deliveryFees is the canonical flat-fee schedule, in loti.
var deliveryFees = map[DeliveryOption]int64{
	DeliveryPickupFarm:  0,
	DeliveryPickupPoint: 35,
	DeliveryHome:        50,
}

// Fee returns the flat fee for the option, in loti. Unknown options cost
// nothing; callers should validate with IsValid first.
func (o DeliveryOption) Fee() int64 {
	return deliveryFees[o]
}

// IsValid checks whether the option is one of the known fulfillment choices.
func (o DeliveryOption) IsValid() bool {
	_, ok := deliveryFees[o]
	return ok
}

// ValidDeliveryOptions returns the set of valid delivery options.
func ValidDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{DeliveryPickupFarm, DeliveryPickupPoint, DeliveryHome}
}

// Payment method constants. Both route through the external gateway.
const (
	PaymentMethodMobileMoney = "mobile-money"
	PaymentMethodCard        = "card"
)

// IsValidPaymentMethod checks whether the given method is supported.
func IsValidPaymentMethod(method string) bool {
	return method == PaymentMethodMobileMoney || method == PaymentMethodCard
}
