package model

import "errors"

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrListingUnavailable = errors.New("listing no longer available")
	ErrOwnListingPurchase = errors.New("cannot buy your own listing")
	ErrNotListingOwner    = errors.New("not the listing owner")
	ErrUnsupportedAction  = errors.New("unsupported action")
	ErrLocationInUse      = errors.New("location is still referenced")
	ErrDuplicateLocation  = errors.New("location already exists")
	ErrVariantConflict    = errors.New("listing cannot carry both retail and agricultural details")
	ErrInvalidRating      = errors.New("rating score must be between 1 and 5")
	ErrSelfRating         = errors.New("cannot rate yourself")
)
