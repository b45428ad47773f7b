package models

import "time"

type User struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"index" json:"email,omitempty"`
	Name        string     `json:"name,omitempty"`
	IsAnonymous bool       `json:"is_anonymous"`
	StoreID     string     `json:"store_id"`               // default store for new sessions
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`   // set for anonymous users only
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
