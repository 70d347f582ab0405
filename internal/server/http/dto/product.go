package dto

import "time"

// ProductRequest describes a new catalog product payload.
type ProductRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category *string `json:"category"`
}

// ProductResponse describes a catalog product.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
