package searchControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NathanNorman/wegmans-shopping/catalog"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// GET /search?store_id=...&term=...
// Serves the cached result set when fresh, otherwise asks the catalog
// provider and caches what it returns. A failed cache write only costs the
// memoization: the caller still gets the provider's results.
func Search(cache *store.SearchCache, client *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Query("store_id")
		term := c.Query("term")
		if storeID == "" || term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "store_id and term are required"})
			return
		}

		products, hit, err := cache.Lookup(storeID, term)
		if err != nil {
			log.Printf("⚠️ Search cache lookup failed, treating as miss: %v", err)
		}
		if hit {
			c.JSON(http.StatusOK, gin.H{"source": "cache", "products": products})
			return
		}

		products, err = client.Search(c.Request.Context(), storeID, term)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog search failed"})
			return
		}

		if err := cache.Store(storeID, term, products); err != nil {
			log.Printf("⚠️ Search cache write failed for %q: %v", store.NormalizeTerm(term), err)
		}

		c.JSON(http.StatusOK, gin.H{"source": "catalog", "products": products})
	}
}
