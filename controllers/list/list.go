package listControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/store"
)

type SaveListInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /user/lists
func GetLists(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		lists, err := archive.Lists(userID, storeID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, lists)
	}
}

// POST /user/lists
func SaveNamedList(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		var input SaveListInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		listID, err := archive.SaveAsNamedList(userID, storeID, input.Name)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"list_id": listID})
	}
}

// POST /user/lists/trip
// Safe to call any number of times per day; converges on one list.
func UpsertTrip(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}

		listID, err := archive.UpsertTripOfTheDay(userID, storeID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"list_id": listID})
	}
}

// POST /user/lists/:list_id/load
func LoadListToCart(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		listID, ok := listIDParam(c)
		if !ok {
			return
		}

		cart, err := archive.LoadToCart(userID, storeID, listID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /user/lists/:list_id
func DeleteList(archive *store.ListArchive) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, storeID, ok := respond.Identity(c)
		if !ok {
			return
		}
		listID, ok := listIDParam(c)
		if !ok {
			return
		}

		if err := archive.Delete(userID, storeID, listID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "List deleted"})
	}
}

func listIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("list_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid list_id"})
		return 0, false
	}
	return uint(id), true
}
