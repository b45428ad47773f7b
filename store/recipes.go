package store

import (
	"strings"

	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/models"
)

// RecipeStore keeps reusable ingredient templates. Recipes are user-scoped
// but not store-scoped: the store comes in when one is added to a cart.
type RecipeStore struct {
	db *gorm.DB
}

func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func (r *RecipeStore) Create(userID, name string, items []models.RecipeItem) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, &ValidationError{Msg: "recipe name is required"}
	}
	if len(items) == 0 {
		return 0, &ValidationError{Msg: "recipe needs at least one ingredient"}
	}

	var recipeID uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		recipe := models.Recipe{UserID: userID, Name: name}
		if err := tx.Create(&recipe).Error; err != nil {
			return storageErr("create recipe", err)
		}
		for _, item := range items {
			item.ID = 0
			item.RecipeID = recipe.ID
			if err := tx.Create(&item).Error; err != nil {
				return storageErr("create recipe", err)
			}
		}
		recipeID = recipe.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return recipeID, nil
}

func (r *RecipeStore) List(userID string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&recipes).Error
	if err != nil {
		return nil, storageErr("list recipes", err)
	}
	return recipes, nil
}

func (r *RecipeStore) Delete(userID string, recipeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		err := tx.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
		if err != nil {
			return notFoundOr("delete recipe", "recipe", err)
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeItem{}).Error; err != nil {
			return storageErr("delete recipe", err)
		}
		if err := tx.Delete(&recipe).Error; err != nil {
			return storageErr("delete recipe", err)
		}
		return nil
	})
}

// AddToCart copies a recipe's ingredients into the active cart through the
// cart's own upsert, so ingredients already in the cart have quantities
// summed rather than duplicated.
func (r *RecipeStore) AddToCart(carts *CartStore, userID, storeID string, recipeID uint) ([]models.CartLine, error) {
	var recipe models.Recipe
	err := r.db.Preload("Items").Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, notFoundOr("add recipe to cart", "recipe", err)
	}

	for _, item := range recipe.Items {
		p := catalog.Product{
			Name:       item.ProductName,
			Price:      item.UnitPrice,
			Aisle:      item.Aisle,
			SellByUnit: item.SellByUnit,
			IsWeight:   !strings.EqualFold(item.SellByUnit, "each"),
		}
		if _, err := carts.Add(userID, storeID, p, item.Quantity, "recipe:"+recipe.Name); err != nil {
			return nil, err
		}
	}

	return carts.Get(userID, storeID)
}
