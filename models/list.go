package models

import "time"

// SavedList is a snapshot of a cart: either user-named, or the auto-saved
// "trip of the day". TripDate is set (YYYY-MM-DD) only for auto-saved lists;
// the unique index backstops the one-trip-per-day upsert against races.
// Named lists carry a NULL TripDate and never collide on it.
type SavedList struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      string          `gorm:"uniqueIndex:idx_trip_of_day;index" json:"user_id"`
	StoreID     string          `gorm:"uniqueIndex:idx_trip_of_day" json:"store_id"`
	Name        string          `json:"name"`
	IsAutoSaved bool            `json:"is_auto_saved"`
	TripDate    *string         `gorm:"uniqueIndex:idx_trip_of_day" json:"trip_date,omitempty"`
	Items       []SavedListItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SavedListItem freezes a cart line's commercial fields at snapshot time.
type SavedListItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ListID      uint    `gorm:"index" json:"list_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"` // price at time of snapshot, not live
	SellByUnit  string  `json:"sell_by_unit"`
	Aisle       string  `json:"aisle"`
}
