package favoritesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/store"
)

type PinInput struct {
	ProductName string `json:"product_name" binding:"required"`
}

// GET /user/favorites
func GetFavorites(favorites *store.FrequentItemsAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		items, err := favorites.Ranked(userID, storeID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/favorites/pin
func PinFavorite(favorites *store.FrequentItemsAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		var input PinInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := favorites.PinManually(userID, storeID, input.ProductName); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Pinned"})
	}
}

// POST /user/favorites/unpin
func UnpinFavorite(favorites *store.FrequentItemsAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		var input PinInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := favorites.Unpin(userID, storeID, input.ProductName); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Unpinned"})
	}
}
