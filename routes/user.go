package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/NathanNorman/wegmans-shopping/controllers/cart"
	favoritesControllers "github.com/NathanNorman/wegmans-shopping/controllers/favorites"
	listControllers "github.com/NathanNorman/wegmans-shopping/controllers/list"
	recipeControllers "github.com/NathanNorman/wegmans-shopping/controllers/recipe"
	"github.com/NathanNorman/wegmans-shopping/middleware"
	"github.com/NathanNorman/wegmans-shopping/store"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, carts *store.CartStore, archive *store.ListArchive,
	favorites *store.FrequentItemsAggregator, recipes *store.RecipeStore) {

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(carts))                       // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartLine(carts))                  // POST /user/cart
			cartGroup.PUT("/:line_id", cartControllers.SetCartLineQuantity(carts))   // PUT /user/cart/:line_id
			cartGroup.DELETE("/:line_id", cartControllers.RemoveCartLine(carts))     // DELETE /user/cart/:line_id
			cartGroup.DELETE("/", cartControllers.ClearCart(carts))                  // DELETE /user/cart
		}

		// ──────────────── Saved Lists & Trips ────────────────
		listGroup := userGroup.Group("/lists")
		{
			listGroup.GET("/", listControllers.GetLists(archive))                        // GET /user/lists
			listGroup.POST("/", listControllers.SaveNamedList(archive))                  // POST /user/lists
			listGroup.POST("/trip", listControllers.UpsertTrip(archive))                 // POST /user/lists/trip
			listGroup.POST("/:list_id/load", listControllers.LoadListToCart(archive))    // POST /user/lists/:list_id/load
			listGroup.GET("/:list_id/export", listControllers.ExportListToExcel(archive)) // GET /user/lists/:list_id/export
			listGroup.DELETE("/:list_id", listControllers.DeleteList(archive))           // DELETE /user/lists/:list_id
		}

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("/", favoritesControllers.GetFavorites(favorites))    // GET /user/favorites
			favGroup.POST("/pin", favoritesControllers.PinFavorite(favorites)) // POST /user/favorites/pin
			favGroup.POST("/unpin", favoritesControllers.UnpinFavorite(favorites)) // POST /user/favorites/unpin
		}

		// ──────────────── Recipes ────────────────
		recipeGroup := userGroup.Group("/recipes")
		{
			recipeGroup.GET("/", recipeControllers.GetRecipes(recipes))                       // GET /user/recipes
			recipeGroup.POST("/", recipeControllers.CreateRecipe(recipes))                    // POST /user/recipes
			recipeGroup.POST("/:recipe_id/cart", recipeControllers.AddRecipeToCart(recipes, carts)) // POST /user/recipes/:recipe_id/cart
			recipeGroup.DELETE("/:recipe_id", recipeControllers.DeleteRecipe(recipes))        // DELETE /user/recipes/:recipe_id
		}
	}
}
