package service

import (
	"context"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

// Supported listing actions.
const (
	ActionContact        = "contact"
	ActionSecurePurchase = "secure_purchase"
)

// ActionResult is the typed outcome of a listing action.
type ActionResult struct {
	OK          bool                `json:"ok"`
	Message     string              `json:"message"`
	RedirectURL string              `json:"redirect_url,omitempty"`
	NewStatus   model.ListingStatus `json:"new_status,omitempty"`
}

// ActionService executes the quick actions of the listing detail page.
// Authentication is enforced by the transport layer; actorID is a verified
// user id by the time it reaches this service.
type ActionService struct {
	listings repository.ListingRepository
}

func NewActionService(listings repository.ListingRepository) *ActionService {
	return &ActionService{listings: listings}
}

// Perform runs the named action for the actor on the listing.
//
// contact never mutates state; it hands the caller a dashboard redirect.
// secure_purchase transitions available → in_escrow through a conditional
// update keyed on the prior status, so of two concurrent purchases exactly
// one wins and the other gets model.ErrListingUnavailable. A repeated call
// on the same listing fails the same way; the second buyer must see the
// refusal, not a silent success.
func (s *ActionService) Perform(ctx context.Context, listingID int64, action string, actorID int64) (*ActionResult, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionContact:
		return &ActionResult{
			OK:          true,
			Message:     "Conversation started. Continue from your profile dashboard.",
			RedirectURL: "/profile/dashboard",
		}, nil

	case ActionSecurePurchase:
		if listing.SellerID == actorID {
			return nil, model.ErrOwnListingPurchase
		}
		if listing.Status != model.StatusAvailable {
			return nil, model.ErrListingUnavailable
		}
		won, err := s.listings.UpdateStatusIf(ctx, listing.ID, model.StatusAvailable, model.StatusInEscrow)
		if err != nil {
			return nil, err
		}
		if !won {
			return nil, model.ErrListingUnavailable
		}
		return &ActionResult{
			OK:        true,
			Message:   "Secure payment initiated, funds are held in escrow.",
			NewStatus: model.StatusInEscrow,
		}, nil

	default:
		return nil, model.ErrUnsupportedAction
	}
}
