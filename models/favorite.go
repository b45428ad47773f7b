package models

import "time"

// FrequentItem is a learned (or manually pinned) favorite, one row per
// (user, store, product).
type FrequentItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"uniqueIndex:idx_frequent_key;index" json:"user_id"`
	StoreID       string    `gorm:"uniqueIndex:idx_frequent_key" json:"store_id"`
	ProductName   string    `gorm:"uniqueIndex:idx_frequent_key" json:"product_name"`
	PurchaseCount int       `json:"purchase_count"`
	IsManual      bool      `json:"is_manual"`
	LastPurchased time.Time `json:"last_purchased"`
	CreatedAt     time.Time `json:"created_at"`
}
