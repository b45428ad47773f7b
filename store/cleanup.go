package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/models"
)

// PurgeExpiredGuests deletes anonymous users whose sessions expired before
// now, together with everything they own. One transaction per guest: a
// guest is either fully gone or fully present. Returns how many were purged.
//
// This is called from operator tooling, not a background goroutine.
func PurgeExpiredGuests(db *gorm.DB, now time.Time) (int, error) {
	var expired []models.User
	err := db.Where("is_anonymous = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Find(&expired).Error
	if err != nil {
		return 0, storageErr("purge guests", err)
	}

	purged := 0
	for _, guest := range expired {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", guest.ID).Delete(&models.CartLine{}).Error; err != nil {
				return storageErr("purge guests", err)
			}

			var lists []models.SavedList
			if err := tx.Where("user_id = ?", guest.ID).Find(&lists).Error; err != nil {
				return storageErr("purge guests", err)
			}
			for _, list := range lists {
				if err := tx.Where("list_id = ?", list.ID).Delete(&models.SavedListItem{}).Error; err != nil {
					return storageErr("purge guests", err)
				}
			}
			if err := tx.Where("user_id = ?", guest.ID).Delete(&models.SavedList{}).Error; err != nil {
				return storageErr("purge guests", err)
			}

			if err := tx.Where("user_id = ?", guest.ID).Delete(&models.FrequentItem{}).Error; err != nil {
				return storageErr("purge guests", err)
			}

			var recipes []models.Recipe
			if err := tx.Where("user_id = ?", guest.ID).Find(&recipes).Error; err != nil {
				return storageErr("purge guests", err)
			}
			for _, r := range recipes {
				if err := tx.Where("recipe_id = ?", r.ID).Delete(&models.RecipeItem{}).Error; err != nil {
					return storageErr("purge guests", err)
				}
			}
			if err := tx.Where("user_id = ?", guest.ID).Delete(&models.Recipe{}).Error; err != nil {
				return storageErr("purge guests", err)
			}

			if err := tx.Where("id = ?", guest.ID).Delete(&models.User{}).Error; err != nil {
				return storageErr("purge guests", err)
			}
			return nil
		})
		if err != nil {
			return purged, err
		}
		purged++
	}
	return purged, nil
}
