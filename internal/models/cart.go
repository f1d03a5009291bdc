package models

// CartItem represents an item in the shopping cart
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"` // in cents
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
	Subtotal  int    `json:"subtotal"` // in cents
}

// CartResponse is the cart as the pages display it. Totals are computed on
// the server; the client never sums anything itself.
type CartResponse struct {
	Items        []CartItem `json:"items"`
	Subtotal     int        `json:"subtotal"`
	ShippingCost int        `json:"shipping_cost"`
	Total        int        `json:"total"`
}

// Shipping for the fallback cart: flat rate, waived above the threshold.
// The external shop backend applies its own rules when it is reachable.
const (
	flatShippingCost      = 490  // cents
	freeShippingThreshold = 5000 // cents
)

// Recalculate recomputes item subtotals and the cart totals in place
func (c *CartResponse) Recalculate() {
	c.Subtotal = 0
	for i := range c.Items {
		c.Items[i].Subtotal = c.Items[i].Price * c.Items[i].Quantity
		c.Subtotal += c.Items[i].Subtotal
	}

	if len(c.Items) == 0 || c.Subtotal >= freeShippingThreshold {
		c.ShippingCost = 0
	} else {
		c.ShippingCost = flatShippingCost
	}

	c.Total = c.Subtotal + c.ShippingCost
}

// IsEmpty reports whether the cart has no items
func (c *CartResponse) IsEmpty() bool {
	return len(c.Items) == 0
}
