package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/store"
)

type CartLineInput struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price"`
	Aisle      string  `json:"aisle"`
	SellByUnit string  `json:"sell_by_unit"`
	IsWeight   bool    `json:"is_weight"`
	Quantity   float64 `json:"quantity" binding:"required"`
	SearchTerm string  `json:"search_term"`
}

type QuantityInput struct {
	Quantity float64 `json:"quantity" binding:"required"`
}

// POST /user/cart
func AddCartLine(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := catalog.Product{
			Name:       input.Name,
			Price:      input.Price,
			Aisle:      input.Aisle,
			SellByUnit: input.SellByUnit,
			IsWeight:   input.IsWeight,
		}
		cart, err := carts.Add(userID, storeID, product, input.Quantity, input.SearchTerm)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /user/cart/:line_id
func SetCartLineQuantity(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		lineID, ok := lineIDParam(c)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.SetQuantity(userID, storeID, lineID, input.Quantity)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart/:line_id
func RemoveCartLine(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		lineID, ok := lineIDParam(c)
		if !ok {
			return
		}

		cart, err := carts.Remove(userID, storeID, lineID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		if err := carts.Clear(userID, storeID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		cart, err := carts.Get(userID, storeID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func lineIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("line_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line_id"})
		return 0, false
	}
	return uint(id), true
}
