package product

import (
	"context"

	"huerto-hogar/internal/domain"
)

// Repository is the read-only product catalog consumed by the storefront.
// The catalog is refreshed externally (seeding); the core only reads.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
