package model

import "time"

// Product represents a sellable catalog item.
type Product struct {
	ID        int64
	Name      string
	SKU       string
	Price     float64
	Stock     int
	Category  *string
	CreatedAt time.Time
}
