package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

func newDetailService(t *testing.T) (*DetailService, *gorm.DB) {
	db := setupTestDB(t)
	seedCatalogue(t, db)
	ratings := repository.NewRatingRepository(db)
	svc := NewDetailService(
		repository.NewListingRepository(db),
		repository.NewProfileRepository(db),
		NewReputationService(ratings),
	)
	return svc, db
}

func TestDetail_NotFound(t *testing.T) {
	svc, _ := newDetailService(t)

	_, err := svc.Detail(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrListingNotFound)
}

func TestDetail_CityFallsBackToSaleLocation(t *testing.T) {
	svc, _ := newDetailService(t)

	// Seller 1 has no profile; the seller city comes from the listing's own
	// sale location.
	view, err := svc.Detail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, view.SellerProfile)
	assert.Equal(t, "Douala", view.SellerCity)
	assert.Equal(t, "Particulier", view.SellerType)
	assert.False(t, view.IsProfessional)
}

func TestDetail_CityPrefersProfileDefault(t *testing.T) {
	svc, db := newDetailService(t)

	mustCreate(t, db, &model.UserProfile{
		UserID:            1,
		DefaultLocationID: int64ptr(2), // Yaounde
		SellerType:        model.SellerProfessional,
	})

	view, err := svc.Detail(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotNil(t, view.SellerProfile)
	assert.Equal(t, "Yaounde", view.SellerCity)
	assert.Equal(t, "Professionnel", view.SellerType)
	assert.True(t, view.IsProfessional)
}

func TestDetail_ReputationAndStars(t *testing.T) {
	svc, db := newDetailService(t)

	mustCreate(t, db, &model.TrustRating{AuthorID: 2, TargetID: 1, Score: 4})
	mustCreate(t, db, &model.TrustRating{AuthorID: 3, TargetID: 1, Score: 5})

	view, err := svc.Detail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 4.5, view.Reputation.Average)
	assert.EqualValues(t, 2, view.Reputation.Count)
	assert.Equal(t, [5]bool{true, true, true, true, true}, view.Stars)
}

func TestDetail_ImagesOrdered(t *testing.T) {
	svc, db := newDetailService(t)

	mustCreate(t, db, &model.ListingImage{ListingID: 1, URL: "/img/c.jpg", Position: 2})
	mustCreate(t, db, &model.ListingImage{ListingID: 1, URL: "/img/a.jpg", Position: 0})
	mustCreate(t, db, &model.ListingImage{ListingID: 1, URL: "/img/b.jpg", Position: 1})

	view, err := svc.Detail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, view.Images, 3)
	assert.Equal(t, "/img/a.jpg", view.Images[0].URL)
	assert.Equal(t, "/img/b.jpg", view.Images[1].URL)
	assert.Equal(t, "/img/c.jpg", view.Images[2].URL)
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "text-bg-success", BadgeClass(model.StatusAvailable))
	assert.Equal(t, "text-bg-warning", BadgeClass(model.StatusInEscrow))
	assert.Equal(t, "text-bg-secondary", BadgeClass(model.StatusSold))
	assert.Equal(t, "text-bg-light", BadgeClass(model.ListingStatus("garbage")))
}
