package recipeControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/models"
	"github.com/NathanNorman/wegmans-shopping/store"
)

type RecipeItemInput struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	SellByUnit  string  `json:"sell_by_unit"`
	Aisle       string  `json:"aisle"`
}

type RecipeInput struct {
	Name  string            `json:"name" binding:"required"`
	Items []RecipeItemInput `json:"items" binding:"required"`
}

// POST /user/recipes
func CreateRecipe(recipes *store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input RecipeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := make([]models.RecipeItem, 0, len(input.Items))
		for _, it := range input.Items {
			items = append(items, models.RecipeItem{
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				SellByUnit:  it.SellByUnit,
				Aisle:       it.Aisle,
			})
		}

		recipeID, err := recipes.Create(userID, input.Name, items)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"recipe_id": recipeID})
	}
}

// GET /user/recipes
func GetRecipes(recipes *store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		list, err := recipes.List(userIDVal.(string))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// DELETE /user/recipes/:recipe_id
func DeleteRecipe(recipes *store.RecipeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		if err := recipes.Delete(userIDVal.(string), recipeID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
	}
}

// POST /user/recipes/:recipe_id/cart
func AddRecipeToCart(recipes *store.RecipeStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		recipeID, ok := recipeIDParam(c)
		if !ok {
			return
		}

		cart, err := recipes.AddToCart(carts, userID, storeID, recipeID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func recipeIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("recipe_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe_id"})
		return 0, false
	}
	return uint(id), true
}
