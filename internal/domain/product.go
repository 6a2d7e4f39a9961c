package domain

import "time"

type Product struct {
	ID        string
	Name      string
	SKU       string
	Price     float64
	Stock     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanSupply reports whether the product can back a reservation of qty units.
func (p Product) CanSupply(qty int) bool {
	return p.Active && p.Stock >= qty
}
