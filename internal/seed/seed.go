// Package seed loads the demo catalog and a demo account. Data mirrors
// the storefront's original product list.
package seed

import (
	"context"
	"fmt"

	"huerto-hogar/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Products returns the default catalog in display order.
func Products() []domain.Product {
	return []domain.Product{
		{Name: "Manzanas Fuji", Category: domain.CategoryFrutas, PriceCents: 1200, Unit: "kg", Available: true},
		{Name: "Naranjas Valencia", Category: domain.CategoryFrutas, PriceCents: 1000, Unit: "kg", Available: true},
		{Name: "Platanos Cavendish", Category: domain.CategoryFrutas, PriceCents: 800, Unit: "kg", Available: true},
		{Name: "Zanahorias Organicas", Category: domain.CategoryVerduras, PriceCents: 900, Unit: "kg", Available: true},
		{Name: "Espinacas Frescas", Category: domain.CategoryVerduras, PriceCents: 700, Unit: "bolsa 500g", Available: true},
	}
}

// Apply inserts seed data for manual testing. Idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	if err := ensureDemoUser(ctx, pool); err != nil {
		return fmt.Errorf("ensure demo user: %w", err)
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (name, category, price_cents, unit, image_url, available)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
ON CONFLICT (name) DO UPDATE
SET category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents,
    unit = EXCLUDED.unit,
    image_url = EXCLUDED.image_url,
    available = EXCLUDED.available
`
	_, err := pool.Exec(ctx, q, p.Name, p.Category, p.PriceCents, p.Unit, p.ImageURL, p.Available)
	return err
}

func ensureDemoUser(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("abc123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (email, password_hash, name, lastname, role, address, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q,
		"ana@duocuc.cl",
		string(hash),
		"Anai",
		"Rojas",
		domain.RoleCustomer,
		"Av. Siempre Viva 742",
		"987654321",
	)
	return err
}
