package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/models"
)

// MergePolicy picks the surviving list when both identities auto-saved a
// trip for the same (store, day). The tie-break is configurable because it
// is a product choice, not an invariant; either policy preserves quantities.
type MergePolicy int

const (
	// KeepNewer keeps the more recently updated list.
	KeepNewer MergePolicy = iota
	// KeepAuthenticated always keeps the authenticated side's list.
	KeepAuthenticated
)

// IdentityMerger folds an anonymous session's cart, saved lists, favorites,
// and recipes into a registered account. The whole merge is one
// transaction: on any failure both identities are left untouched.
type IdentityMerger struct {
	db     *gorm.DB
	Policy MergePolicy
}

func NewIdentityMerger(db *gorm.DB) *IdentityMerger {
	return &IdentityMerger{db: db, Policy: KeepNewer}
}

// Merge transfers everything owned by anonID to authID. Quantities and
// purchase counts are summed per (store, product); nothing is lost or
// double-counted, and the anonymous user row is removed at the end.
func (m *IdentityMerger) Merge(anonID, authID string) error {
	if anonID == "" || authID == "" || anonID == authID {
		return &ValidationError{Msg: "merge requires two distinct user ids"}
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		var anon, auth models.User
		if err := tx.Where("id = ?", anonID).First(&anon).Error; err != nil {
			return notFoundOr("merge", "anonymous user", err)
		}
		if err := tx.Where("id = ?", authID).First(&auth).Error; err != nil {
			return notFoundOr("merge", "user", err)
		}
		if !anon.IsAnonymous {
			return &ConflictError{Msg: "source identity is not an anonymous session"}
		}
		if auth.IsAnonymous {
			return &ConflictError{Msg: "target identity is not a registered account"}
		}

		if err := m.mergeCartLines(tx, anonID, authID); err != nil {
			return err
		}
		if err := m.mergeSavedLists(tx, anonID, authID); err != nil {
			return err
		}
		if err := m.mergeFrequentItems(tx, anonID, authID); err != nil {
			return err
		}
		if err := tx.Model(&models.Recipe{}).Where("user_id = ?", anonID).
			Update("user_id", authID).Error; err != nil {
			return storageErr("merge recipes", err)
		}

		if err := tx.Where("id = ?", anonID).Delete(&models.User{}).Error; err != nil {
			return storageErr("merge", err)
		}
		return nil
	})
}

func (m *IdentityMerger) mergeCartLines(tx *gorm.DB, anonID, authID string) error {
	var anonLines []models.CartLine
	if err := tx.Where("user_id = ?", anonID).Order("id").Find(&anonLines).Error; err != nil {
		return storageErr("merge cart", err)
	}

	for _, line := range anonLines {
		var existing models.CartLine
		err := tx.Where("user_id = ? AND store_id = ? AND product_name = ?",
			authID, line.StoreID, line.ProductName).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Model(&line).Update("user_id", authID).Error; err != nil {
				return storageErr("merge cart", err)
			}
			continue
		}
		if err != nil {
			return storageErr("merge cart", err)
		}

		err = tx.Model(&existing).Update("quantity", existing.Quantity+line.Quantity).Error
		if err != nil {
			return storageErr("merge cart", err)
		}
		if err := tx.Delete(&line).Error; err != nil {
			return storageErr("merge cart", err)
		}
	}
	return nil
}

func (m *IdentityMerger) mergeSavedLists(tx *gorm.DB, anonID, authID string) error {
	// Named lists re-parent untouched: user-chosen names are not deduplicated.
	err := tx.Model(&models.SavedList{}).
		Where("user_id = ? AND is_auto_saved = ?", anonID, false).
		Update("user_id", authID).Error
	if err != nil {
		return storageErr("merge lists", err)
	}

	var anonTrips []models.SavedList
	err = tx.Preload("Items").
		Where("user_id = ? AND is_auto_saved = ?", anonID, true).
		Order("id").Find(&anonTrips).Error
	if err != nil {
		return storageErr("merge lists", err)
	}

	for _, trip := range anonTrips {
		var counterpart models.SavedList
		err := tx.Preload("Items").
			Where("user_id = ? AND store_id = ? AND is_auto_saved = ? AND trip_date = ?",
				authID, trip.StoreID, true, trip.TripDate).
			First(&counterpart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Model(&trip).Update("user_id", authID).Error; err != nil {
				return storageErr("merge lists", err)
			}
			continue
		}
		if err != nil {
			return storageErr("merge lists", err)
		}

		winner, loser := counterpart, trip
		if m.Policy == KeepNewer && trip.UpdatedAt.After(counterpart.UpdatedAt) {
			winner, loser = trip, counterpart
		}
		if err := mergeListItems(tx, &winner, &loser); err != nil {
			return err
		}
		if err := tx.Model(&winner).Update("user_id", authID).Error; err != nil {
			return storageErr("merge lists", err)
		}
	}
	return nil
}

// mergeListItems unions the loser's items into the winner, summing
// quantities per product, then removes the loser entirely.
func mergeListItems(tx *gorm.DB, winner, loser *models.SavedList) error {
	byProduct := make(map[string]*models.SavedListItem, len(winner.Items))
	for i := range winner.Items {
		byProduct[winner.Items[i].ProductName] = &winner.Items[i]
	}

	for _, item := range loser.Items {
		if existing, ok := byProduct[item.ProductName]; ok {
			err := tx.Model(existing).Update("quantity", existing.Quantity+item.Quantity).Error
			if err != nil {
				return storageErr("merge list items", err)
			}
			continue
		}
		moved := models.SavedListItem{
			ListID:      winner.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			SellByUnit:  item.SellByUnit,
			Aisle:       item.Aisle,
		}
		if err := tx.Create(&moved).Error; err != nil {
			return storageErr("merge list items", err)
		}
	}

	if err := tx.Where("list_id = ?", loser.ID).Delete(&models.SavedListItem{}).Error; err != nil {
		return storageErr("merge list items", err)
	}
	if err := tx.Delete(&models.SavedList{}, loser.ID).Error; err != nil {
		return storageErr("merge list items", err)
	}
	return nil
}

func (m *IdentityMerger) mergeFrequentItems(tx *gorm.DB, anonID, authID string) error {
	var anonItems []models.FrequentItem
	if err := tx.Where("user_id = ?", anonID).Order("id").Find(&anonItems).Error; err != nil {
		return storageErr("merge favorites", err)
	}

	for _, item := range anonItems {
		var existing models.FrequentItem
		err := tx.Where("user_id = ? AND store_id = ? AND product_name = ?",
			authID, item.StoreID, item.ProductName).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Model(&item).Update("user_id", authID).Error; err != nil {
				return storageErr("merge favorites", err)
			}
			continue
		}
		if err != nil {
			return storageErr("merge favorites", err)
		}

		updates := map[string]interface{}{
			"purchase_count": existing.PurchaseCount + item.PurchaseCount,
			"is_manual":      existing.IsManual || item.IsManual,
		}
		if item.LastPurchased.After(existing.LastPurchased) {
			updates["last_purchased"] = item.LastPurchased
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return storageErr("merge favorites", err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return storageErr("merge favorites", err)
		}
	}
	return nil
}
