package pricing

import (
	"testing"

	"huerto-hogar/internal/domain"
)

func cartWith(discount bool, lines ...domain.CartLine) domain.CartState {
	return domain.CartState{Lines: lines, StudentDiscount: discount}
}

func line(name string, price int64, qty int) domain.CartLine {
	return domain.CartLine{
		Product:  domain.Product{ID: name, Name: name, PriceCents: price},
		Quantity: qty,
	}
}

func TestSubtotalEmptyCart(t *testing.T) {
	if got := Subtotal(domain.CartState{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestBreakdownWithoutDiscount(t *testing.T) {
	cart := cartWith(false, line("Manzanas Fuji", 1200, 2))
	b := Compute(cart)
	if b.SubtotalCents != 2400 || b.DiscountCents != 0 || b.TotalCents != 2400 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestBreakdownWithStudentDiscount(t *testing.T) {
	cart := cartWith(true, line("Manzanas Fuji", 1200, 2))
	b := Compute(cart)
	if b.SubtotalCents != 2400 {
		t.Fatalf("unexpected subtotal: %d", b.SubtotalCents)
	}
	if b.DiscountCents != 240 {
		t.Fatalf("unexpected discount: %d", b.DiscountCents)
	}
	if b.TotalCents != 2160 {
		t.Fatalf("unexpected total: %d", b.TotalCents)
	}
}

func TestTotalIsSubtotalMinusDiscount(t *testing.T) {
	carts := []domain.CartState{
		cartWith(false),
		cartWith(true),
		cartWith(false, line("a", 1000, 1), line("b", 800, 3)),
		cartWith(true, line("a", 1000, 1), line("b", 800, 3)),
		cartWith(true, line("c", 1, 1)),
	}
	for i, cart := range carts {
		if Total(cart) != Subtotal(cart)-Discount(cart) {
			t.Fatalf("cart %d: total != subtotal - discount", i)
		}
		if Total(cart) < 0 {
			t.Fatalf("cart %d: negative total", i)
		}
		if !cart.StudentDiscount && Discount(cart) != 0 {
			t.Fatalf("cart %d: discount without flag", i)
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	cart := cartWith(true, line("a", 1200, 2), line("b", 1000, 1))
	first := Compute(cart)
	second := Compute(cart)
	if first != second {
		t.Fatalf("breakdown drifted: %+v vs %+v", first, second)
	}
}
