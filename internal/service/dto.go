package service

import (
	"github.com/shopspring/decimal"

	"github.com/foodtuck/storefront-api/internal/domain"
)

// AddItemRequest represents the add-to-cart payload. Zero is a legal ID and
// a legal price, so neither field carries a required tag; price only has to
// be non-negative.
type AddItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

// SetQuantityRequest represents a quantity edit payload. Any integer is
// accepted; values below 1, zero included, are clamped to 1 rather than
// rejected.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CouponRequest represents a coupon submission. The code may be empty; empty
// and unrecognized codes resolve to a zero discount rate.
type CouponRequest struct {
	Code string `json:"code"`
}

// ContactRequest represents the contact form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CartItemView is one cart row with its rounded subtotal
type CartItemView struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartView is the full rendered cart state returned to the frontend
type CartView struct {
	Items   []CartItemView      `json:"items"`
	Summary domain.OrderSummary `json:"summary"`
}
