package domain

// CartLine is one product entry in the cart with its quantity.
// Quantity is always >= 1; a line that would reach 0 is removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState is an immutable snapshot of the cart. Lines keep insertion
// order, which is also display order; one line per product id.
type CartState struct {
	Lines           []CartLine `json:"lines"`
	StudentDiscount bool       `json:"studentDiscount"`
}

// Line returns the line for a product id, or nil if absent.
func (s CartState) Line(productID string) *CartLine {
	for i := range s.Lines {
		if s.Lines[i].Product.ID == productID {
			return &s.Lines[i]
		}
	}
	return nil
}

// Clone returns a deep copy so observers can never mutate store state.
func (s CartState) Clone() CartState {
	out := CartState{StudentDiscount: s.StudentDiscount}
	if len(s.Lines) > 0 {
		out.Lines = make([]CartLine, len(s.Lines))
		copy(out.Lines, s.Lines)
	}
	return out
}
