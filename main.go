package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"trustcam_backend/internal/config"
	"trustcam_backend/internal/controller"
	"trustcam_backend/internal/middleware"
	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
	"trustcam_backend/internal/router"
	"trustcam_backend/internal/service"
	"trustcam_backend/pkg/database"
)

// @title TrustCam Marketplace API
// @version 1.0
// @description Classifieds backend: catalogue browsing, listing detail with
// @description seller trust metrics, escrow-style purchase actions and user
// @description profiles.
func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWTSecret,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
		Issuer:          cfg.JWTIssuer,
	})

	db := database.InitDB(cfg.DatabaseDSN,
		&model.User{},
		&model.Location{},
		&model.Category{},
		&model.Listing{},
		&model.RetailDetail{},
		&model.AgriDetail{},
		&model.ListingImage{},
		&model.UserProfile{},
		&model.TrustRating{},
	)

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	listingRepo := repository.NewListingRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	reputationSvc := service.NewReputationService(ratingRepo)
	catalogueSvc := service.NewCatalogueService(listingRepo, categoryRepo)
	detailSvc := service.NewDetailService(listingRepo, profileRepo, reputationSvc)
	actionSvc := service.NewActionService(listingRepo)
	listingSvc := service.NewListingService(listingRepo, locationRepo)
	profileSvc := service.NewProfileService(profileRepo, ratingRepo, locationRepo, reputationSvc)

	// Controllers
	catalogueCtl := controller.NewCatalogueController(catalogueSvc)
	listingCtl := controller.NewListingController(detailSvc, actionSvc, listingSvc)
	profileCtl := controller.NewProfileController(profileSvc)
	locationCtl := controller.NewLocationController(locationRepo)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	router.InitRoutes(r, catalogueCtl, listingCtl, profileCtl, locationCtl)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
