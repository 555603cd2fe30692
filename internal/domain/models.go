package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem represents one product's presence in the cart.
// Name, Price and ImageURL are fixed at the time the product is added;
// Quantity is the only field the cart engine mutates. The same product ID may
// appear on more than one line (adding a product twice yields two rows).
type LineItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Quantity int             `json:"quantity"`
}

// CartSnapshot is the full ordered cart state at a point in time.
// Insertion order is significant: display order equals storage order.
// In a valid snapshot every item has Quantity >= 1.
type CartSnapshot []LineItem

// OrderSummary is derived from a snapshot and a discount rate on every
// request. It is never persisted.
type OrderSummary struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountRate       decimal.Decimal `json:"discount_rate"`
	DiscountedSubtotal decimal.Decimal `json:"discounted_subtotal"`
	ShippingCharge     decimal.Decimal `json:"shipping_charge"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}

// Product represents a catalog record from the content source
type Product struct {
	ID       int64   `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}
