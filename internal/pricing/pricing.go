// Package pricing derives cart totals from a CartState snapshot.
// Everything here is pure: no stored state, no hidden running totals.
package pricing

import "huerto-hogar/internal/domain"

// StudentDiscountPercent is the flat discount applied when the student
// discount flag is set. Changing the rate only touches this constant.
const StudentDiscountPercent = 10

// Subtotal sums price*quantity over all lines. 0 for an empty cart.
func Subtotal(cart domain.CartState) int64 {
	var sum int64
	for _, line := range cart.Lines {
		sum += line.Product.PriceCents * int64(line.Quantity)
	}
	return sum
}

// Discount returns the student discount amount, 0 when the flag is off.
func Discount(cart domain.CartState) int64 {
	if !cart.StudentDiscount {
		return 0
	}
	return Subtotal(cart) * StudentDiscountPercent / 100
}

// Total is subtotal minus discount. Never negative: the discount is a
// strict fraction of the subtotal.
func Total(cart domain.CartState) int64 {
	return Subtotal(cart) - Discount(cart)
}

// Breakdown bundles the three derived amounts for presentation.
type Breakdown struct {
	SubtotalCents int64 `json:"subtotalCents"`
	DiscountCents int64 `json:"discountCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Compute recalculates the full breakdown from the snapshot.
func Compute(cart domain.CartState) Breakdown {
	return Breakdown{
		SubtotalCents: Subtotal(cart),
		DiscountCents: Discount(cart),
		TotalCents:    Total(cart),
	}
}
