package domain

// CommissionPercent is the platform's share of every order subtotal.
// Farmers receive the remaining 90%.
const CommissionPercent = 10

// OrderTotals is the derived totals triple for a set of cart items. It is
// recomputed on every read and never stored as mutable state.
//
// Total always equals Subtotal: the commission is the platform's cut taken
// out of the subtotal, not a fee added on top of what the consumer pays.
type OrderTotals struct {
	Subtotal   int64 `json:"subtotal"`
	Commission int64 `json:"commission"`
	Total      int64 `json:"total"`
}

// FarmerShare returns what the farmers collectively receive: the subtotal
// less the platform commission.
func (t OrderTotals) FarmerShare() int64 {
	return t.Subtotal - t.Commission
}

// CalculateOrderTotals maps a list of cart items to its totals triple.
// An empty or nil list yields all zeros. The function is pure: calling it
// twice on the same items yields identical results.
func CalculateOrderTotals(items []CartItem) OrderTotals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return OrderTotals{
		Subtotal:   subtotal,
		Commission: CommissionFor(subtotal),
		Total:      subtotal,
	}
}

// CommissionFor returns the platform commission on the given subtotal,
// rounded half-up to the nearest loti. Integer arithmetic keeps the result
// exact: 10% of 95 is 9.5, which rounds to 10.
func CommissionFor(subtotal int64) int64 {
	return (subtotal*CommissionPercent + 50) / 100
}
