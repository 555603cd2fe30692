package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/foodtuck/storefront-api/internal/domain"
	"github.com/foodtuck/storefront-api/pkg/errors"
)

// ShippingCharge is the flat shipping fee added after discounting.
var ShippingCharge = decimal.RequireFromString("5.00")

// couponRates maps recognized coupon codes (lowercase) to their discount rate.
// Unrecognized codes resolve to a zero rate.
var couponRates = map[string]decimal.Decimal{
	"uzair": decimal.RequireFromString("0.10"),
}

// Normalize returns a copy of the snapshot with every quantity below 1
// coerced to 1. Persisted carts may omit the quantity field entirely, so this
// runs on every load. Normalize is idempotent.
func Normalize(snapshot domain.CartSnapshot) domain.CartSnapshot {
	normalized := make(domain.CartSnapshot, len(snapshot))
	for i, item := range snapshot {
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		normalized[i] = item
	}
	return normalized
}

// SetQuantity returns a copy of the snapshot with the item at index set to
// max(1, quantity). All other items and fields are unchanged.
func SetQuantity(snapshot domain.CartSnapshot, index, quantity int) (domain.CartSnapshot, error) {
	if index < 0 || index >= len(snapshot) {
		return nil, &errors.ErrOutOfRange{Index: index, Length: len(snapshot)}
	}

	if quantity < 1 {
		quantity = 1
	}

	updated := make(domain.CartSnapshot, len(snapshot))
	copy(updated, snapshot)
	updated[index].Quantity = quantity

	return updated, nil
}

// RemoveItem returns a copy of the snapshot without the item at index,
// preserving the relative order of the remaining items.
func RemoveItem(snapshot domain.CartSnapshot, index int) (domain.CartSnapshot, error) {
	if index < 0 || index >= len(snapshot) {
		return nil, &errors.ErrOutOfRange{Index: index, Length: len(snapshot)}
	}

	updated := make(domain.CartSnapshot, 0, len(snapshot)-1)
	updated = append(updated, snapshot[:index]...)
	updated = append(updated, snapshot[index+1:]...)

	return updated, nil
}

// LineSubtotal computes price * max(1, quantity) rounded to 2 decimal places,
// half away from zero.
func LineSubtotal(item domain.LineItem) decimal.Decimal {
	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return item.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// Subtotal sums the already-rounded per-line subtotals. Rounding happens per
// line before summation so the total always matches the per-row figures shown
// to the customer, even when that drifts a sub-cent from the unrounded sum.
func Subtotal(snapshot domain.CartSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, item := range snapshot {
		total = total.Add(LineSubtotal(item))
	}
	return total
}

// TotalQuantity sums the quantities across the snapshot, treating any
// quantity below 1 as 1. Feeds the cart badge.
func TotalQuantity(snapshot domain.CartSnapshot) int {
	total := 0
	for _, item := range snapshot {
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total += quantity
	}
	return total
}

// ResolveCoupon maps a coupon code to its discount rate via a case-insensitive
// exact match. Unrecognized codes, including the empty string, resolve to zero.
func ResolveCoupon(code string) decimal.Decimal {
	if rate, ok := couponRates[strings.ToLower(code)]; ok {
		return rate
	}
	return decimal.Zero
}

// Summarize computes the order summary for a snapshot at the given discount
// rate. The shipping charge is flat and added after discounting, never
// discounted itself.
func Summarize(snapshot domain.CartSnapshot, discountRate decimal.Decimal) domain.OrderSummary {
	subtotal := Subtotal(snapshot)
	discounted := subtotal.Mul(decimal.NewFromInt(1).Sub(discountRate)).Round(2)

	return domain.OrderSummary{
		Subtotal:           subtotal,
		DiscountRate:       discountRate,
		DiscountedSubtotal: discounted,
		ShippingCharge:     ShippingCharge,
		GrandTotal:         discounted.Add(ShippingCharge),
	}
}
