package service

import (
	"context"
	"math"

	"trustcam_backend/internal/repository"
)

// Reputation is the aggregated trust score of one user. Average is 0.0 when
// the user has no ratings; callers never see a null state.
type Reputation struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ReputationService aggregates peer trust ratings.
type ReputationService struct {
	ratings repository.RatingRepository
}

func NewReputationService(ratings repository.RatingRepository) *ReputationService {
	return &ReputationService{ratings: ratings}
}

// Reputation returns the arithmetic mean of all scores targeting the user,
// rounded to two decimal places, together with the rating count.
func (s *ReputationService) Reputation(ctx context.Context, userID int64) (Reputation, error) {
	average, count, err := s.ratings.AggregateForTarget(ctx, userID)
	if err != nil {
		return Reputation{}, err
	}
	return Reputation{
		Average: math.Round(average*100) / 100,
		Count:   count,
	}, nil
}

// Stars renders an average as five booleans, index i filled iff
// i < round(average). Rounding is half away from zero, so 4.5 fills all
// five stars; banker's rounding is deliberately not used.
func Stars(average float64) [5]bool {
	filled := int(math.Round(average))
	var stars [5]bool
	for i := range stars {
		stars[i] = i < filled
	}
	return stars
}
