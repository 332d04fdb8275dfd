package service

import (
	"context"
	"errors"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// statusBadges maps a listing status to its badge CSS class; unknown values
// fall back to the plain badge.
var statusBadges = map[model.ListingStatus]string{
	model.StatusAvailable: "text-bg-success",
	model.StatusInEscrow:  "text-bg-warning",
	model.StatusSold:      "text-bg-secondary",
}

const defaultBadgeClass = "text-bg-light"

// DetailView is the display-ready composition of one listing with its
// images, seller profile and reputation.
type DetailView struct {
	Listing        model.Listing        `json:"listing"`
	Images         []model.ListingImage `json:"images"`
	SellerProfile  *model.UserProfile   `json:"seller_profile,omitempty"`
	SellerCity     string               `json:"seller_city"`
	SellerType     string               `json:"seller_type"`
	IsProfessional bool                 `json:"is_professional"`
	Reputation     Reputation           `json:"reputation"`
	Stars          [5]bool              `json:"stars"`
	BadgeClass     string               `json:"badge_class"`
}

// DetailService assembles listing detail pages.
type DetailService struct {
	listings   repository.ListingRepository
	profiles   repository.ProfileRepository
	reputation *ReputationService
}

func NewDetailService(listings repository.ListingRepository, profiles repository.ProfileRepository, reputation *ReputationService) *DetailService {
	return &DetailService{listings: listings, profiles: profiles, reputation: reputation}
}

// Detail loads the listing with its ordered images, the seller's profile and
// reputation. Returns model.ErrListingNotFound when the id resolves to
// nothing.
func (s *DetailService) Detail(ctx context.Context, listingID int64) (*DetailView, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, listing.SellerID)
	if err != nil && !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}

	reputation, err := s.reputation.Reputation(ctx, listing.SellerID)
	if err != nil {
		return nil, err
	}

	return &DetailView{
		Listing:        *listing,
		Images:         listing.Images,
		SellerProfile:  profile,
		SellerCity:     sellerCity(profile, listing),
		SellerType:     profile.SellerTypeLabel(),
		IsProfessional: profile != nil && profile.SellerType == model.SellerProfessional,
		Reputation:     reputation,
		Stars:          Stars(reputation.Average),
		BadgeClass:     BadgeClass(listing.Status),
	}, nil
}

// BadgeClass is the pure status-to-style mapping used on listing cards and
// the detail page.
func BadgeClass(status model.ListingStatus) string {
	if class, ok := statusBadges[status]; ok {
		return class
	}
	return defaultBadgeClass
}

// sellerCity prefers the profile's default location city and falls back to
// the listing's own sale location city.
func sellerCity(profile *model.UserProfile, listing *model.Listing) string {
	if profile != nil && profile.DefaultLocation != nil {
		return profile.DefaultLocation.City
	}
	if listing.Location != nil {
		return listing.Location.City
	}
	return ""
}
