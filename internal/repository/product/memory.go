package product

import (
	"context"
	"sync"

	"huerto-hogar/internal/domain"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemory returns an in-memory catalog preloaded with the given
// products. IDs are generated when missing.
func NewMemory(products ...domain.Product) Repository {
	repo := &memoryRepo{products: make([]domain.Product, 0, len(products))}
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		repo.products = append(repo.products, p)
	}
	return repo
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
