package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

func newReputationService(t *testing.T) (*ReputationService, repository.RatingRepository) {
	db := setupTestDB(t)
	ratings := repository.NewRatingRepository(db)
	return NewReputationService(ratings), ratings
}

func TestReputation_NoRatings(t *testing.T) {
	svc, _ := newReputationService(t)

	reputation, err := svc.Reputation(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, reputation.Average)
	assert.EqualValues(t, 0, reputation.Count)
}

func TestReputation_Average(t *testing.T) {
	svc, ratings := newReputationService(t)
	ctx := context.Background()

	assert.NoError(t, ratings.Upsert(ctx, &model.TrustRating{AuthorID: 1, TargetID: 9, Score: 4}))
	assert.NoError(t, ratings.Upsert(ctx, &model.TrustRating{AuthorID: 2, TargetID: 9, Score: 5}))

	reputation, err := svc.Reputation(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, reputation.Average)
	assert.EqualValues(t, 2, reputation.Count)
}

func TestReputation_RoundsToTwoDecimals(t *testing.T) {
	svc, ratings := newReputationService(t)
	ctx := context.Background()

	assert.NoError(t, ratings.Upsert(ctx, &model.TrustRating{AuthorID: 1, TargetID: 9, Score: 4}))
	assert.NoError(t, ratings.Upsert(ctx, &model.TrustRating{AuthorID: 2, TargetID: 9, Score: 4}))
	assert.NoError(t, ratings.Upsert(ctx, &model.TrustRating{AuthorID: 3, TargetID: 9, Score: 5}))

	reputation, err := svc.Reputation(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, 4.33, reputation.Average)
}

func TestStars_HalfRoundsUp(t *testing.T) {
	// The rounding policy is half away from zero: 4.5 fills all five
	// stars. This boundary is pinned on purpose.
	assert.Equal(t, [5]bool{true, true, true, true, true}, Stars(4.5))
	assert.Equal(t, [5]bool{true, true, true, true, false}, Stars(4.4))
	assert.Equal(t, [5]bool{true, true, true, false, false}, Stars(3.49))
	assert.Equal(t, [5]bool{true, true, true, true, false}, Stars(3.5))
	assert.Equal(t, [5]bool{false, false, false, false, false}, Stars(0))
}
