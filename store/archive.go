package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NathanNorman/wegmans-shopping/models"
)

const tripDateLayout = "2006-01-02"

// ListArchive snapshots carts into saved lists and restores them. It owns
// the one-auto-saved-list-per-day invariant and notifies the favorites
// aggregator on commit and delete.
type ListArchive struct {
	db        *gorm.DB
	favorites *FrequentItemsAggregator
	now       func() time.Time
}

func NewListArchive(db *gorm.DB, favorites *FrequentItemsAggregator) *ListArchive {
	return &ListArchive{db: db, favorites: favorites, now: time.Now}
}

// SaveAsNamedList snapshots the current cart into a new user-named list.
func (a *ListArchive) SaveAsNamedList(userID, storeID, name string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Msg: "list name is required"}
	}

	var listID uint
	err := a.db.Transaction(func(tx *gorm.DB) error {
		lines, err := cartSnapshot(tx, userID, storeID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return &ValidationError{Msg: "cannot save an empty cart"}
		}

		list := models.SavedList{
			UserID:      userID,
			StoreID:     storeID,
			Name:        name,
			IsAutoSaved: false,
		}
		if err := tx.Create(&list).Error; err != nil {
			return storageErr("save named list", err)
		}
		if err := insertListItems(tx, list.ID, lines); err != nil {
			return err
		}
		if err := a.favorites.recordCompletionTx(tx, userID, storeID, productNames(lines)); err != nil {
			return err
		}
		listID = list.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return listID, nil
}

// UpsertTripOfTheDay converges on exactly one auto-saved list for
// (user, store, today) no matter how often it is called. The first call of
// the day creates the list and counts the trip; later calls fully replace
// its items from the current cart, last call wins. With an empty cart and
// no existing list it does nothing and returns 0.
func (a *ListArchive) UpsertTripOfTheDay(userID, storeID string) (uint, error) {
	day := a.now().Format(tripDateLayout)

	var listID uint
	err := a.db.Transaction(func(tx *gorm.DB) error {
		lines, err := cartSnapshot(tx, userID, storeID)
		if err != nil {
			return err
		}

		var list models.SavedList
		err = tx.Where("user_id = ? AND store_id = ? AND is_auto_saved = ? AND trip_date = ?",
			userID, storeID, true, day).First(&list).Error
		created := false
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if len(lines) == 0 {
				return nil
			}
			list = models.SavedList{
				UserID:      userID,
				StoreID:     storeID,
				Name:        "Trip " + day,
				IsAutoSaved: true,
				TripDate:    &day,
			}
			// The unique (user, store, trip_date) index backstops a race
			// between two first-calls; losing the insert means the row
			// exists, so fall through to the replace path.
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&list)
			if result.Error != nil {
				return storageErr("upsert trip", result.Error)
			}
			if result.RowsAffected == 0 {
				if err := tx.Where("user_id = ? AND store_id = ? AND is_auto_saved = ? AND trip_date = ?",
					userID, storeID, true, day).First(&list).Error; err != nil {
					return storageErr("upsert trip", err)
				}
			} else {
				created = true
			}
		} else if err != nil {
			return storageErr("upsert trip", err)
		}

		if err := tx.Where("list_id = ?", list.ID).Delete(&models.SavedListItem{}).Error; err != nil {
			return storageErr("upsert trip", err)
		}
		if err := insertListItems(tx, list.ID, lines); err != nil {
			return err
		}
		if err := tx.Model(&list).Update("updated_at", a.now()).Error; err != nil {
			return storageErr("upsert trip", err)
		}
		if created {
			if err := a.favorites.recordCompletionTx(tx, userID, storeID, productNames(lines)); err != nil {
				return err
			}
		}
		listID = list.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return listID, nil
}

// LoadToCart replaces the cart with a saved list's items. Ownership is
// checked first; verify, clear, and copy run in one transaction so a
// failure leaves the original cart intact.
func (a *ListArchive) LoadToCart(userID, storeID string, listID uint) ([]models.CartLine, error) {
	var loaded []models.CartLine
	err := a.db.Transaction(func(tx *gorm.DB) error {
		var list models.SavedList
		err := tx.Preload("Items").
			Where("id = ? AND user_id = ? AND store_id = ?", listID, userID, storeID).
			First(&list).Error
		if err != nil {
			return notFoundOr("load list", "list", err)
		}

		if err := tx.Where("user_id = ? AND store_id = ?", userID, storeID).
			Delete(&models.CartLine{}).Error; err != nil {
			return storageErr("load list", err)
		}

		now := a.now()
		for _, item := range list.Items {
			line := models.CartLine{
				UserID:      userID,
				StoreID:     storeID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				SellByUnit:  item.SellByUnit,
				Aisle:       item.Aisle,
				AddedAt:     now,
			}
			if err := tx.Create(&line).Error; err != nil {
				return storageErr("load list", err)
			}
			loaded = append(loaded, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

// Delete removes a list and its items, then walks back the favorites counts
// for what it contained. The cascade is explicit rather than left to the
// database so the decrement and the delete commit together.
func (a *ListArchive) Delete(userID, storeID string, listID uint) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		var list models.SavedList
		err := tx.Preload("Items").
			Where("id = ? AND user_id = ? AND store_id = ?", listID, userID, storeID).
			First(&list).Error
		if err != nil {
			return notFoundOr("delete list", "list", err)
		}

		if err := a.favorites.onListDeletedTx(tx, userID, storeID, itemNames(list.Items)); err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&models.SavedListItem{}).Error; err != nil {
			return storageErr("delete list", err)
		}
		if err := tx.Delete(&list).Error; err != nil {
			return storageErr("delete list", err)
		}
		return nil
	})
}

// Lists returns the user's saved lists for one store, newest first.
func (a *ListArchive) Lists(userID, storeID string) ([]models.SavedList, error) {
	var lists []models.SavedList
	err := a.db.Preload("Items").
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("created_at DESC, id DESC").Find(&lists).Error
	if err != nil {
		return nil, storageErr("list lists", err)
	}
	return lists, nil
}

// GetList returns one owned list with items.
func (a *ListArchive) GetList(userID, storeID string, listID uint) (models.SavedList, error) {
	var list models.SavedList
	err := a.db.Preload("Items").
		Where("id = ? AND user_id = ? AND store_id = ?", listID, userID, storeID).
		First(&list).Error
	if err != nil {
		return models.SavedList{}, notFoundOr("get list", "list", err)
	}
	return list, nil
}

func cartSnapshot(tx *gorm.DB, userID, storeID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := tx.Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("id").Find(&lines).Error
	if err != nil {
		return nil, storageErr("cart snapshot", err)
	}
	return lines, nil
}

func insertListItems(tx *gorm.DB, listID uint, lines []models.CartLine) error {
	for _, l := range lines {
		item := models.SavedListItem{
			ListID:      listID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			SellByUnit:  l.SellByUnit,
			Aisle:       l.Aisle,
		}
		if err := tx.Create(&item).Error; err != nil {
			return storageErr("insert list items", err)
		}
	}
	return nil
}

func productNames(lines []models.CartLine) []string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.ProductName)
	}
	return names
}

func itemNames(items []models.SavedListItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.ProductName)
	}
	return names
}
