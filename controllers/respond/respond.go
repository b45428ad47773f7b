package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/store"
)

// Error maps the store error taxonomy onto HTTP statuses.
func Error(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case store.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case store.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case store.IsTransient(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Identity pulls the authenticated user id set by the JWT middleware plus
// the store scope from the query string. Aborts with an error response and
// returns false when either is missing.
func Identity(c *gin.Context) (userID, storeID string, ok bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	userID, _ = userIDVal.(string)

	storeID = c.Query("store_id")
	if storeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "store_id is required"})
		return "", "", false
	}
	return userID, storeID, true
}
