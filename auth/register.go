package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/controllers/respond"
	"github.com/NathanNorman/wegmans-shopping/models"
	"github.com/NathanNorman/wegmans-shopping/store"
)

type RegisterInput struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	StoreID string `json:"store_id"`
	GuestID string `json:"guest_id"`
}

// POST /auth/register
// Creates (or logs into) a registered account. When the request carries a
// guest id, that session's cart, lists, and favorites are merged into the
// account — all-or-nothing, before the token is issued.
func RegisterUser(db *gorm.DB, merger *store.IdentityMerger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ? AND is_anonymous = ?", input.Email, false).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				ID:          uuid.NewString(),
				Email:       input.Email,
				Name:        input.Name,
				IsAnonymous: false,
				StoreID:     input.StoreID,
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-session"
		if input.GuestID != "" {
			if err := merger.Merge(input.GuestID, user.ID); err != nil {
				// A failed merge leaves both identities untouched; surface
				// it rather than registering with half a session.
				respond.Error(c, err)
				return
			}
			mergeStatus = "merged"
		}

		token, err := issueToken(user.ID, "user", 30*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Registration successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        token,
		})
	}
}
