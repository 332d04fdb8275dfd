package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"trustcam_backend/internal/model"
	"trustcam_backend/internal/repository"
)

func newListingService(t *testing.T) (*ListingService, *gorm.DB) {
	db := setupTestDB(t)
	seedCatalogue(t, db)
	svc := NewListingService(
		repository.NewListingRepository(db),
		repository.NewLocationRepository(db),
	)
	return svc, db
}

func TestCreate_RejectsBothVariants(t *testing.T) {
	svc, db := newListingService(t)

	_, err := svc.Create(context.Background(), 1, CreateListingInput{
		Title: "Impossible", Price: 10, CategoryID: 2, LocationID: 1,
		Retail: &RetailInput{Brand: "X", Condition: model.ConditionNew},
		Agri:   &AgriInput{OriginRegion: model.RegionOuest, Unit: "kg"},
	})
	assert.ErrorIs(t, err, model.ErrVariantConflict)

	// Nothing was written.
	var count int64
	db.Model(&model.Listing{}).Where("title = ?", "Impossible").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreate_RetailListing(t *testing.T) {
	svc, _ := newListingService(t)

	listing, err := svc.Create(context.Background(), 1, CreateListingInput{
		Title:      "Frigo LG",
		Price:      250000,
		CategoryID: 3,
		LocationID: 1,
		Retail: &RetailInput{
			Brand:     "LG",
			Condition: model.ConditionRefurbished,
			Specs:     map[string]interface{}{"volume": "260L"},
		},
		ImageURLs: []string{"/img/front.jpg", "/img/open.jpg"},
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, listing.Status)
	assert.Equal(t, model.VariantRetail, listing.Variant().Kind)
	assert.Equal(t, model.ConditionRefurbished, listing.Retail.Condition)
	assert.Len(t, listing.Images, 2)
	assert.Equal(t, 0, listing.Images[0].Position)
	assert.Equal(t, 1, listing.Images[1].Position)
}

func TestCreate_PlainListingHasNoVariant(t *testing.T) {
	svc, _ := newListingService(t)

	listing, err := svc.Create(context.Background(), 1, CreateListingInput{
		Title: "Divers", Price: 1000, CategoryID: 4, LocationID: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.VariantNone, listing.Variant().Kind)
}

func TestCreate_UnknownLocation(t *testing.T) {
	svc, _ := newListingService(t)

	_, err := svc.Create(context.Background(), 1, CreateListingInput{
		Title: "Nulle part", Price: 10, CategoryID: 2, LocationID: 999,
	})
	assert.ErrorIs(t, err, model.ErrLocationNotFound)
}

func TestDelete_OwnerOnly(t *testing.T) {
	svc, _ := newListingService(t)

	err := svc.Delete(context.Background(), 2, 1)
	assert.ErrorIs(t, err, model.ErrNotListingOwner)
}

func TestDelete_CascadesVariantAndImages(t *testing.T) {
	svc, db := newListingService(t)

	mustCreate(t, db, &model.ListingImage{ListingID: 1, URL: "/img/x.jpg"})

	assert.NoError(t, svc.Delete(context.Background(), 1, 1))

	var listings, details, images int64
	db.Model(&model.Listing{}).Where("id = ?", 1).Count(&listings)
	db.Model(&model.RetailDetail{}).Where("listing_id = ?", 1).Count(&details)
	db.Model(&model.ListingImage{}).Where("listing_id = ?", 1).Count(&images)
	assert.EqualValues(t, 0, listings)
	assert.EqualValues(t, 0, details)
	assert.EqualValues(t, 0, images)
}

func TestMine_ListsOnlyOwnListings(t *testing.T) {
	svc, _ := newListingService(t)

	mine, err := svc.Mine(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, mine, 3)
	for _, listing := range mine {
		assert.EqualValues(t, 1, listing.SellerID)
	}
}
