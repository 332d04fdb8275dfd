package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"trustcam_backend/internal/controller"
	"trustcam_backend/internal/middleware"
)

// InitRoutes registers every route.
func InitRoutes(r *gin.Engine,
	catalogueCtl *controller.CatalogueController,
	listingCtl *controller.ListingController,
	profileCtl *controller.ProfileController,
	locationCtl *controller.LocationController) {
	// Swagger at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Public catalogue surface
		api.GET("/catalogue", catalogueCtl.GetCatalogue)
		api.GET("/categories", catalogueCtl.GetCategories)

		listings := api.Group("/listings")
		{
			// Mine before :id so "mine" never parses as an id
			listings.GET("/mine", middleware.RequireAuth(), listingCtl.GetMyListings)
			listings.GET("/:id", listingCtl.GetDetail)
			// The action handler gates itself so anonymous callers get the
			// structured sign-in payload instead of a bare 401.
			listings.POST("/:id/actions", middleware.OptionalAuth(), listingCtl.PerformAction)
			listings.POST("", middleware.RequireAuth(), listingCtl.CreateListing)
			listings.DELETE("/:id", middleware.RequireAuth(), listingCtl.DeleteListing)
		}

		locations := api.Group("/locations")
		{
			locations.GET("", locationCtl.GetLocations)
			locations.POST("", middleware.RequireAuth(), locationCtl.CreateLocation)
			locations.DELETE("/:id", middleware.RequireAuth(), locationCtl.DeleteLocation)
		}

		profile := api.Group("/profile", middleware.RequireAuth())
		{
			profile.GET("", profileCtl.GetDashboard)
			profile.PUT("", profileCtl.UpdateProfile)
		}

		api.POST("/sellers/:id/ratings", middleware.RequireAuth(), profileCtl.RateSeller)
	}
}
