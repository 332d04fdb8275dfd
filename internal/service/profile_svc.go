package service

import (
	"context"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// DashboardView is the trust dashboard of the signed-in user.
type DashboardView struct {
	Profile    model.UserProfile `json:"profile"`
	Reputation Reputation        `json:"reputation"`
}

// UpdateProfileInput carries the editable profile fields; nil pointers leave
// the stored value untouched.
type UpdateProfileInput struct {
	PhotoURL          *string
	DefaultLocationID *int64
	PreferredPayment  *model.PaymentMethod
	SellerType        *model.SellerType
	PaymentNumber     *string
}

// ProfileService manages profiles and peer trust ratings.
type ProfileService struct {
	profiles   repository.ProfileRepository
	ratings    repository.RatingRepository
	locations  repository.LocationRepository
	reputation *ReputationService
}

func NewProfileService(profiles repository.ProfileRepository, ratings repository.RatingRepository, locations repository.LocationRepository, reputation *ReputationService) *ProfileService {
	return &ProfileService{profiles: profiles, ratings: ratings, locations: locations, reputation: reputation}
}

// Dashboard returns the user's profile (created on first access) together
// with their aggregated reputation.
func (s *ProfileService) Dashboard(ctx context.Context, userID int64) (*DashboardView, error) {
	profile, err := s.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	reputation, err := s.reputation.Reputation(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &DashboardView{Profile: *profile, Reputation: reputation}, nil
}

// Update applies the provided fields to the user's profile and returns the
// fresh row. A default location, when set, must exist.
func (s *ProfileService) Update(ctx context.Context, userID int64, input UpdateProfileInput) (*model.UserProfile, error) {
	if _, err := s.profiles.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.PhotoURL != nil {
		fields["photo_url"] = *input.PhotoURL
	}
	if input.DefaultLocationID != nil {
		if _, err := s.locations.GetByID(ctx, *input.DefaultLocationID); err != nil {
			return nil, err
		}
		fields["default_location_id"] = *input.DefaultLocationID
	}
	if input.PreferredPayment != nil {
		fields["preferred_payment"] = *input.PreferredPayment
	}
	if input.SellerType != nil {
		fields["seller_type"] = *input.SellerType
	}
	if input.PaymentNumber != nil {
		fields["payment_number"] = *input.PaymentNumber
	}

	if len(fields) > 0 {
		if err := s.profiles.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// RateSeller records the author's rating of the target. A second rating by
// the same author overwrites the first; the pair never duplicates.
func (s *ProfileService) RateSeller(ctx context.Context, authorID, targetID int64, score int, comment string) error {
	if score < 1 || score > 5 {
		return model.ErrInvalidRating
	}
	if authorID == targetID {
		return model.ErrSelfRating
	}
	return s.ratings.Upsert(ctx, &model.TrustRating{
		AuthorID: authorID,
		TargetID: targetID,
		Score:    score,
		Comment:  comment,
	})
}
