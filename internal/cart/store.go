// Package cart owns the in-process shopping cart for the current session.
// All mutations are serialized through a mutex and every committed change
// publishes an immutable CartState snapshot to subscribers.
package cart

import (
	"io"
	"log"
	"sync"

	"huerto-hogar/internal/domain"
	"huerto-hogar/internal/pricing"
)

// Store is the single writer for CartState. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  domain.CartState
	subs   map[int]func(domain.CartState)
	nextID int
	logger *log.Logger
}

// New returns an empty Store.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{subs: make(map[int]func(domain.CartState)), logger: logger}
}

// Subscribe registers fn and pushes the current snapshot before any
// later mutation can reach it. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(domain.CartState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	fn(s.state.Clone())
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Breakdown recomputes subtotal/discount/total from the current state.
func (s *Store) Breakdown() pricing.Breakdown {
	return pricing.Compute(s.Snapshot())
}

// AddItem inserts a new line or increments an existing one. Callers must
// pass quantity >= 1; anything else is rejected and logged.
func (s *Store) AddItem(product domain.Product, quantity int) {
	if quantity < 1 {
		s.logger.Printf("cart: add %s rejected, quantity=%d", product.ID, quantity)
		return
	}
	s.mu.Lock()
	if line := s.state.Line(product.ID); line != nil {
		line.Quantity += quantity
	} else {
		s.state.Lines = append(s.state.Lines, domain.CartLine{Product: product, Quantity: quantity})
	}
	s.publishLocked()
}

// IncrementQuantity adds 1 to the matching line. Absent ids are a no-op.
func (s *Store) IncrementQuantity(productID string) {
	s.mu.Lock()
	line := s.state.Line(productID)
	if line == nil {
		s.logger.Printf("cart: increment unknown product %s", productID)
		s.mu.Unlock()
		return
	}
	line.Quantity++
	s.publishLocked()
}

// DecrementQuantity subtracts 1; a line reaching 0 is removed, never kept.
func (s *Store) DecrementQuantity(productID string) {
	s.mu.Lock()
	line := s.state.Line(productID)
	if line == nil {
		s.logger.Printf("cart: decrement unknown product %s", productID)
		s.mu.Unlock()
		return
	}
	line.Quantity--
	if line.Quantity == 0 {
		s.removeLocked(productID)
	}
	s.publishLocked()
}

// RemoveItem deletes the line unconditionally.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	if s.state.Line(productID) == nil {
		s.logger.Printf("cart: remove unknown product %s", productID)
		s.mu.Unlock()
		return
	}
	s.removeLocked(productID)
	s.publishLocked()
}

// ToggleStudentDiscount flips the student discount flag.
func (s *Store) ToggleStudentDiscount() {
	s.mu.Lock()
	s.state.StudentDiscount = !s.state.StudentDiscount
	s.publishLocked()
}

// ClearCart resets to an empty cart with the discount flag off.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.state = domain.CartState{}
	s.publishLocked()
}

func (s *Store) removeLocked(productID string) {
	lines := s.state.Lines[:0]
	for _, l := range s.state.Lines {
		if l.Product.ID != productID {
			lines = append(lines, l)
		}
	}
	s.state.Lines = lines
}

// publishLocked notifies subscribers synchronously with the lock held,
// so snapshots arrive in commit order. Callbacks must not call back into
// the Store. The caller must hold s.mu; it is released here.
func (s *Store) publishLocked() {
	snap := s.state.Clone()
	for _, fn := range s.subs {
		fn(snap)
	}
	s.mu.Unlock()
}
