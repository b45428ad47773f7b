package models

import "time"

// Recipe is a reusable ingredient template, independent of trip history.
type Recipe struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    string       `gorm:"index" json:"user_id"`
	Name      string       `json:"name"`
	Items     []RecipeItem `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type RecipeItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	RecipeID    uint    `gorm:"index" json:"recipe_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	SellByUnit  string  `json:"sell_by_unit"`
	Aisle       string  `json:"aisle"`
}
