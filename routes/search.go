package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	searchControllers "github.com/NathanNorman/wegmans-shopping/controllers/search"
	"github.com/NathanNorman/wegmans-shopping/middleware"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// SetupSearchRoutes registers the cached catalog search endpoint.
func SetupSearchRoutes(r *gin.Engine, cache *store.SearchCache, client *catalog.Client) {
	searchGroup := r.Group("/search")
	searchGroup.Use(middleware.ValidateToken)
	{
		searchGroup.GET("/", searchControllers.Search(cache, client)) // GET /search?store_id=&term=
	}
}
