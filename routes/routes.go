package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// SetupRoutes is the single entry-point that wires up the auth, search, and
// user route groups. Components are built once here and handed to handlers
// explicitly; nothing holds package-level state.
func SetupRoutes(r *gin.Engine, db *gorm.DB, catalogClient *catalog.Client) {
	carts := store.NewCartStore(db)
	favorites := store.NewFrequentItemsAggregator(db)
	archive := store.NewListArchive(db, favorites)
	merger := store.NewIdentityMerger(db)
	cache := store.NewSearchCache(db)
	recipes := store.NewRecipeStore(db)

	SetupAuthRoutes(r, db, merger)

	SetupSearchRoutes(r, cache, catalogClient)

	SetupUserRoutes(r, carts, archive, favorites, recipes)
}
