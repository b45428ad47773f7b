package models

import (
	"time"

	"gorm.io/datatypes"
)

// SearchCacheEntry memoizes one catalog lookup per (store, normalized term).
// Expired rows are not reaped; the next Store() for the key overwrites them.
type SearchCacheEntry struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	StoreID  string         `gorm:"uniqueIndex:idx_search_cache_key" json:"store_id"`
	Term     string         `gorm:"uniqueIndex:idx_search_cache_key" json:"term"` // normalized
	Results  datatypes.JSON `json:"results"`
	CachedAt time.Time      `json:"cached_at"`
	HitCount int            `json:"hit_count"`
}
