package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NathanNorman/wegmans-shopping/models"
)

func pancakeItems() []models.RecipeItem {
	return []models.RecipeItem{
		{ProductName: "Flour", Quantity: 1, UnitPrice: 2.99, SellByUnit: "Each", Aisle: "Baking"},
		{ProductName: "Milk", Quantity: 1, UnitPrice: 2.49, SellByUnit: "Each", Aisle: "Dairy"},
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	db := newTestDB(t)
	recipes := NewRecipeStore(db)

	_, err := recipes.Create("u1", "  ", pancakeItems())
	assert.True(t, IsValidation(err))

	_, err = recipes.Create("u1", "Pancakes", nil)
	assert.True(t, IsValidation(err))
}

func TestRecipeLifecycle(t *testing.T) {
	db := newTestDB(t)
	recipes := NewRecipeStore(db)

	id, err := recipes.Create("u1", "Pancakes", pancakeItems())
	require.NoError(t, err)

	list, err := recipes.List("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 2)

	// Not visible to, or deletable by, anyone else.
	other, err := recipes.List("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
	assert.True(t, IsNotFound(recipes.Delete("u2", id)))

	require.NoError(t, recipes.Delete("u1", id))

	var itemCount int64
	db.Model(&models.RecipeItem{}).Count(&itemCount)
	assert.Zero(t, itemCount)
}

func TestRecipeAddToCartSumsIntoExistingLines(t *testing.T) {
	db := newTestDB(t)
	recipes := NewRecipeStore(db)
	carts := NewCartStore(db)

	id, err := recipes.Create("u1", "Pancakes", pancakeItems())
	require.NoError(t, err)

	// Milk is already in the cart; the recipe's milk sums into it.
	_, err = carts.Add("u1", "s1", milk(), 1, "milk")
	require.NoError(t, err)

	cart, err := recipes.AddToCart(carts, "u1", "s1", id)
	require.NoError(t, err)
	require.Len(t, cart, 2)

	byName := map[string]float64{}
	for _, line := range cart {
		byName[line.ProductName] = line.Quantity
	}
	assert.Equal(t, 2.0, byName["Milk"])
	assert.Equal(t, 1.0, byName["Flour"])
}
