package store

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/models"
)

// SearchCacheTTL bounds how long a cached catalog result is served.
const SearchCacheTTL = 7 * 24 * time.Hour

// SearchCache is a durable memo of catalog lookups keyed by
// (store, normalized term). Expired rows are filtered at read time, never
// reaped; the next Store for the same key overwrites them.
type SearchCache struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSearchCache(db *gorm.DB) *SearchCache {
	return &SearchCache{db: db, now: time.Now}
}

// NormalizeTerm folds a query term onto the cache key form.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Lookup returns the cached result set if one exists and is fresh. A hit
// bumps the row's hit counter; an expired or missing row is a plain miss.
func (c *SearchCache) Lookup(storeID, term string) ([]catalog.Product, bool, error) {
	var entry models.SearchCacheEntry
	err := c.db.Where("store_id = ? AND term = ?", storeID, NormalizeTerm(term)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storageErr("cache lookup", err)
	}

	if c.now().Sub(entry.CachedAt) >= SearchCacheTTL {
		return nil, false, nil
	}

	// Monitoring only; a failed bump must not turn a hit into an error.
	c.db.Model(&entry).UpdateColumn("hit_count", gorm.Expr("hit_count + 1"))

	var products []catalog.Product
	if err := json.Unmarshal(entry.Results, &products); err != nil {
		return nil, false, nil
	}
	return products, true, nil
}

// Store upserts the result set for (store, term), restarting the freshness
// window and the hit counter.
func (c *SearchCache) Store(storeID, term string, results []catalog.Product) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return storageErr("cache store", err)
	}

	now := c.now()
	entry := models.SearchCacheEntry{
		StoreID:  storeID,
		Term:     NormalizeTerm(term),
		Results:  payload,
		CachedAt: now,
	}
	err = c.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}, {Name: "term"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"results":   payload,
			"cached_at": now,
			"hit_count": 0,
		}),
	}).Create(&entry).Error
	if err != nil {
		return storageErr("cache store", err)
	}
	return nil
}
