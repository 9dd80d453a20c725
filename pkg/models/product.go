package models

import "encoding/json"

// Product is caller-supplied catalog data. It is read-only per request and
// never persisted by the core beyond the per-user context snapshot.
// ID is a json.Number so numeric and string identifiers round-trip unchanged.
type Product struct {
	ID          json.Number `json:"id,omitempty"`
	Name        string      `json:"name"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	Price       float64     `json:"price,omitempty"`
	// Discount is a percentage. Zero means no discount.
	Discount float64  `json:"discount,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

// CartItem is caller-supplied cart data, read-only per request.
type CartItem struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
