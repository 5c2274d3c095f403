package models

import "time"

// CartItem is one line of a cart. Line identity for merging is
// (product id, color, size); ID is the line's own identifier.
type CartItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i *CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart holds the ordered line items of one session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums price times quantity across all lines. Monetary arithmetic is
// plain floating point; two-decimal rounding happens at presentation time.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}
