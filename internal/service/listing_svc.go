package service

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// RetailInput is the retail variant of a new listing.
type RetailInput struct {
	Brand     string
	Condition model.RetailCondition
	Specs     map[string]interface{}
}

// AgriInput is the agricultural variant of a new listing.
type AgriInput struct {
	OriginRegion  model.Region
	Unit          string
	HarvestDate   *time.Time
	ShelfLifeDays *int
}

// CreateListingInput describes a new listing. At most one of Retail and
// Agri may be set; supplying both is rejected before anything is written.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	CategoryID  int64
	LocationID  int64
	Retail      *RetailInput
	Agri        *AgriInput
	ImageURLs   []string
}

// ListingService covers seller-side listing management. Browsing goes
// through CatalogueService.
type ListingService struct {
	listings  repository.ListingRepository
	locations repository.LocationRepository
}

func NewListingService(listings repository.ListingRepository, locations repository.LocationRepository) *ListingService {
	return &ListingService{listings: listings, locations: locations}
}

// Create persists a new available listing with its variant detail and
// ordered images.
func (s *ListingService) Create(ctx context.Context, sellerID int64, input CreateListingInput) (*model.Listing, error) {
	if input.Retail != nil && input.Agri != nil {
		return nil, model.ErrVariantConflict
	}
	if _, err := s.locations.GetByID(ctx, input.LocationID); err != nil {
		return nil, err
	}

	listing := &model.Listing{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Status:      model.StatusAvailable,
	}
	if input.Retail != nil {
		listing.Retail = &model.RetailDetail{
			Brand:     input.Retail.Brand,
			Condition: input.Retail.Condition,
			Specs:     datatypes.JSONMap(input.Retail.Specs),
		}
	}
	if input.Agri != nil {
		listing.Agri = &model.AgriDetail{
			OriginRegion:  input.Agri.OriginRegion,
			Unit:          input.Agri.Unit,
			HarvestDate:   input.Agri.HarvestDate,
			ShelfLifeDays: input.Agri.ShelfLifeDays,
		}
	}
	for i, url := range input.ImageURLs {
		listing.Images = append(listing.Images, model.ListingImage{URL: url, Position: i})
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return s.listings.GetByID(ctx, listing.ID)
}

// Mine lists the seller's own listings, newest first.
func (s *ListingService) Mine(ctx context.Context, sellerID int64) ([]model.Listing, error) {
	return s.listings.ListBySeller(ctx, sellerID)
}

// Delete removes the seller's own listing with its variant and images.
func (s *ListingService) Delete(ctx context.Context, sellerID, listingID int64) error {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return model.ErrNotListingOwner
	}
	return s.listings.Delete(ctx, listingID)
}
