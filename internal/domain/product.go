package domain

import "time"

// Product categories as shown by the catalog screens.
const (
	CategoryFrutas    = "FRUTAS"
	CategoryVerduras  = "VERDURAS"
	CategoryOrganicos = "ORGANICOS"
)

// Product is a catalog entry. Immutable once fetched from the catalog;
// prices are stored in minor units (CLP is zero-decimal, so 1200 is $1200).
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"priceCents"`
	Unit       string    `json:"unit"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"createdAt"`
}
