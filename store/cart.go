package store

import (
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/models"
)

// MinQuantity is the smallest orderable amount of a weight-sold product.
const MinQuantity = 0.1

// CartStore owns the active cart for each (user, store) pair.
type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// Add upserts a line: an existing (user, store, product) line has the new
// quantity summed into it atomically, so two concurrent adds for the same
// product converge on one row with the combined quantity.
func (s *CartStore) Add(userID, storeID string, p catalog.Product, qty float64, searchTerm string) ([]models.CartLine, error) {
	if err := validateQuantity(p.IsWeight, qty); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, &ValidationError{Msg: "product name is required"}
	}

	now := time.Now()
	line := models.CartLine{
		UserID:      userID,
		StoreID:     storeID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitPrice:   p.Price,
		SellByUnit:  p.SellByUnit,
		Aisle:       p.Aisle,
		SearchTerm:  searchTerm,
		AddedAt:     now,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}, {Name: "product_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
			"added_at": now,
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, storageErr("cart add", err)
	}

	return s.Get(userID, storeID)
}

// SetQuantity replaces a line's quantity. Quantities below the weight
// granularity are rejected; removal goes through Remove, not a zero.
func (s *CartStore) SetQuantity(userID, storeID string, lineID uint, qty float64) ([]models.CartLine, error) {
	if qty < MinQuantity {
		return nil, &ValidationError{Msg: "quantity must be at least 0.1"}
	}

	result := s.db.Model(&models.CartLine{}).
		Where("id = ? AND user_id = ? AND store_id = ?", lineID, userID, storeID).
		Updates(map[string]interface{}{"quantity": qty, "added_at": time.Now()})
	if result.Error != nil {
		return nil, storageErr("cart set quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &NotFoundError{Kind: "cart line"}
	}

	return s.Get(userID, storeID)
}

// Remove deletes a single line.
func (s *CartStore) Remove(userID, storeID string, lineID uint) ([]models.CartLine, error) {
	result := s.db.Where("id = ? AND user_id = ? AND store_id = ?", lineID, userID, storeID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		return nil, storageErr("cart remove", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &NotFoundError{Kind: "cart line"}
	}

	return s.Get(userID, storeID)
}

// Clear empties the cart for one (user, store). Other stores' carts are
// untouched.
func (s *CartStore) Clear(userID, storeID string) error {
	if err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).
		Delete(&models.CartLine{}).Error; err != nil {
		return storageErr("cart clear", err)
	}
	return nil
}

// Get returns the cart lines in insertion order.
func (s *CartStore) Get(userID, storeID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).
		Order("id").Find(&lines).Error
	if err != nil {
		return nil, storageErr("cart get", err)
	}
	return lines, nil
}

func validateQuantity(isWeight bool, qty float64) error {
	if isWeight {
		if qty < MinQuantity {
			return &ValidationError{Msg: "quantity must be at least 0.1"}
		}
		return nil
	}
	if qty < 1 || qty != math.Trunc(qty) {
		return &ValidationError{Msg: "unit-sold items take whole quantities of at least 1"}
	}
	return nil
}

// notFoundOr maps gorm's record-not-found onto the taxonomy and everything
// else onto a transient storage failure.
func notFoundOr(op, kind string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind}
	}
	return storageErr(op, err)
}
