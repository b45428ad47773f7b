package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/auth"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, merger *store.IdentityMerger) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestUser(db))         // POST /auth/guest
		authGroup.POST("/register", auth.RegisterUser(db, merger)) // POST /auth/register
	}
}
