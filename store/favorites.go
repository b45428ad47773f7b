package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NathanNorman/wegmans-shopping/models"
)

// manualPinCount is the sentinel assigned to a manual pin with no purchase
// history. It keeps pinned items ahead of any organic count without
// pretending to be one: unpinning an item that only ever held the sentinel
// reverts it to zero.
const manualPinCount = 999

// FrequentItemsAggregator derives the favorites list from committed trips
// plus manual pins.
type FrequentItemsAggregator struct {
	db  *gorm.DB
	now func() time.Time
}

func NewFrequentItemsAggregator(db *gorm.DB) *FrequentItemsAggregator {
	return &FrequentItemsAggregator{db: db, now: time.Now}
}

// RecordCompletion counts one purchase of each product. Called when a trip
// is committed.
func (f *FrequentItemsAggregator) RecordCompletion(userID, storeID string, products []string) error {
	return f.recordCompletionTx(f.db, userID, storeID, products)
}

func (f *FrequentItemsAggregator) recordCompletionTx(tx *gorm.DB, userID, storeID string, products []string) error {
	now := f.now()
	for _, name := range products {
		item := models.FrequentItem{
			UserID:        userID,
			StoreID:       storeID,
			ProductName:   name,
			PurchaseCount: 1,
			LastPurchased: now,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}, {Name: "product_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"purchase_count": gorm.Expr("purchase_count + 1"),
				"last_purchased": now,
			}),
		}).Create(&item).Error
		if err != nil {
			return storageErr("record completion", err)
		}
	}
	return nil
}

// PinManually forces a product to the top of the favorites. A product never
// purchased is inserted with the sentinel count; one with history keeps its
// organic count and only gains the flag.
func (f *FrequentItemsAggregator) PinManually(userID, storeID, product string) error {
	var item models.FrequentItem
	err := f.db.Where("user_id = ? AND store_id = ? AND product_name = ?", userID, storeID, product).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.FrequentItem{
			UserID:        userID,
			StoreID:       storeID,
			ProductName:   product,
			PurchaseCount: manualPinCount,
			IsManual:      true,
			LastPurchased: f.now(),
		}
		if err := f.db.Create(&item).Error; err != nil {
			return storageErr("pin", err)
		}
		return nil
	}
	if err != nil {
		return storageErr("pin", err)
	}

	if err := f.db.Model(&item).Update("is_manual", true).Error; err != nil {
		return storageErr("pin", err)
	}
	return nil
}

// Unpin clears the manual flag, reverting to the organic count. An item
// that only existed because of the pin is removed.
func (f *FrequentItemsAggregator) Unpin(userID, storeID, product string) error {
	var item models.FrequentItem
	err := f.db.Where("user_id = ? AND store_id = ? AND product_name = ?", userID, storeID, product).
		First(&item).Error
	if err != nil {
		return notFoundOr("unpin", "favorite", err)
	}

	if item.PurchaseCount >= manualPinCount {
		item.PurchaseCount = 0
	}
	if item.PurchaseCount == 0 {
		if err := f.db.Delete(&item).Error; err != nil {
			return storageErr("unpin", err)
		}
		return nil
	}

	err = f.db.Model(&item).Updates(map[string]interface{}{
		"is_manual":      false,
		"purchase_count": item.PurchaseCount,
	}).Error
	if err != nil {
		return storageErr("unpin", err)
	}
	return nil
}

// OnListDeleted undoes one purchase count per product that was in the
// deleted list. Counts never go negative; a zero-count item is dropped
// unless manually pinned, in which case it falls back to the sentinel.
func (f *FrequentItemsAggregator) OnListDeleted(userID, storeID string, products []string) error {
	return f.onListDeletedTx(f.db, userID, storeID, products)
}

func (f *FrequentItemsAggregator) onListDeletedTx(tx *gorm.DB, userID, storeID string, products []string) error {
	for _, name := range products {
		var item models.FrequentItem
		err := tx.Where("user_id = ? AND store_id = ? AND product_name = ?", userID, storeID, name).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return storageErr("list-deleted decrement", err)
		}

		count := item.PurchaseCount - 1
		if count < 0 {
			count = 0
		}
		if count == 0 {
			if !item.IsManual {
				if err := tx.Delete(&item).Error; err != nil {
					return storageErr("list-deleted decrement", err)
				}
				continue
			}
			count = manualPinCount
		}
		if err := tx.Model(&item).Update("purchase_count", count).Error; err != nil {
			return storageErr("list-deleted decrement", err)
		}
	}
	return nil
}

// Ranked returns the favorites in display order: manual pins first, then by
// purchase count, recency, and finally insertion order so ties are stable.
func (f *FrequentItemsAggregator) Ranked(userID, storeID string) ([]models.FrequentItem, error) {
	var items []models.FrequentItem
	err := f.db.Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("is_manual DESC, purchase_count DESC, last_purchased DESC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, storageErr("favorites list", err)
	}
	return items, nil
}
