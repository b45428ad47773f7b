package models

import "time"

// CartLine is one product in a user's active cart for one store.
// The composite unique index is the upsert key: concurrent adds for the
// same product land on the same row.
type CartLine struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"uniqueIndex:idx_cart_line_key;index" json:"user_id"`
	StoreID     string    `gorm:"uniqueIndex:idx_cart_line_key" json:"store_id"`
	ProductName string    `gorm:"uniqueIndex:idx_cart_line_key" json:"product_name"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	SellByUnit  string    `json:"sell_by_unit"` // "Each", "lb", ...
	Aisle       string    `json:"aisle"`
	SearchTerm  string    `json:"search_term"` // query that surfaced this product
	AddedAt     time.Time `json:"added_at"`
}
