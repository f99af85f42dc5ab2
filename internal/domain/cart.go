package domain

import "time"

// Currency is the ISO code for the Lesotho loti, the marketplace currency.
// All amounts are whole loti; produce is priced in whole units.
const Currency = "LSL"

// Cart represents a consumer's shopping cart. It lives for the duration of
// the session and is owned exclusively by one user.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem pairs a product snapshot with a quantity. A cart holds at most
// one item per product; repeated adds merge by summing quantities.
type CartItem struct {
	ProductID string `json:"product_id"`
	FarmID    string `json:"farm_id"`
	FarmerID  string `json:"farmer_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// LineTotal returns price times quantity for this item.
func (i *CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Subtotal calculates the total price of all items in the cart.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// FindItemIndex returns the index of the cart item matching the given
// product ID, or -1 if not found.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Totals derives the order totals for the current cart contents.
func (c *Cart) Totals() OrderTotals {
	return CalculateOrderTotals(c.Items)
}
