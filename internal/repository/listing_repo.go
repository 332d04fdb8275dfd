package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trustcam_backend/internal/model"
)

// ==================== Filter ====================

// CatalogueFilter is the resolved predicate set applied to the catalogue
// query. Zero values mean "no restriction"; CategoryIDs is the already
// computed descendant closure of the selected category.
type CatalogueFilter struct {
	CategoryIDs  []int64
	Region       string
	City         string
	Condition    string
	OriginRegion string
}

// ==================== Interface ====================

// ListingRepository is the persistence boundary of the catalogue.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	GetByID(ctx context.Context, id int64) (*model.Listing, error)
	Delete(ctx context.Context, id int64) error
	ListAvailable(ctx context.Context, filter CatalogueFilter) ([]model.Listing, int64, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]model.Listing, error)

	// CountAvailableByCategory returns direct available-listing counts per
	// category id under the geography filters only.
	CountAvailableByCategory(ctx context.Context, region, city string) (map[int64]int64, error)

	// Facet option lists over currently available listings.
	DistinctRegions(ctx context.Context) ([]string, error)
	DistinctCities(ctx context.Context, region string) ([]string, error)
	DistinctConditions(ctx context.Context) ([]string, error)
	DistinctOriginRegions(ctx context.Context) ([]string, error)

	// UpdateStatusIf performs the guarded escrow transition: the status
	// column is updated only when it still holds the expected prior value,
	// so two concurrent purchases cannot both win.
	UpdateStatusIf(ctx context.Context, id int64, from, to model.ListingStatus) (bool, error)
}

// ==================== Implementation ====================

type listingRepo struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepo) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	var listing model.Listing
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Location").
		Preload("Retail").
		Preload("Agri").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		First(&listing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Listing{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *listingRepo) ListAvailable(ctx context.Context, filter CatalogueFilter) ([]model.Listing, int64, error) {
	query := r.applyFilter(r.baseAvailable(ctx), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []model.Listing
	err := query.
		Preload("Seller").
		Preload("Category").
		Preload("Location").
		Preload("Retail").
		Preload("Agri").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Order("listings.created_at DESC").
		Find(&listings).Error
	return listings, total, err
}

func (r *listingRepo) ListBySeller(ctx context.Context, sellerID int64) ([]model.Listing, error) {
	var listings []model.Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Location").
		Preload("Retail").
		Preload("Agri").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listings).Error
	return listings, err
}

func (r *listingRepo) CountAvailableByCategory(ctx context.Context, region, city string) (map[int64]int64, error) {
	query := r.baseAvailable(ctx).
		Select("listings.category_id AS category_id, COUNT(*) AS total")
	query = r.applyGeography(query, region, city)

	var rows []struct {
		CategoryID int64
		Total      int64
	}
	if err := query.Group("listings.category_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Total
	}
	return counts, nil
}

func (r *listingRepo) DistinctRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := r.baseAvailable(ctx).
		Joins("JOIN locations ON locations.id = listings.location_id").
		Distinct().
		Order("locations.region ASC").
		Pluck("locations.region", &regions).Error
	return regions, err
}

func (r *listingRepo) DistinctCities(ctx context.Context, region string) ([]string, error) {
	query := r.baseAvailable(ctx).
		Joins("JOIN locations ON locations.id = listings.location_id")
	if region != "" {
		query = query.Where("locations.region = ?", region)
	}
	var cities []string
	err := query.
		Distinct().
		Order("locations.city ASC").
		Pluck("locations.city", &cities).Error
	return cities, err
}

func (r *listingRepo) DistinctConditions(ctx context.Context) ([]string, error) {
	var conditions []string
	err := r.baseAvailable(ctx).
		Joins("JOIN retail_details ON retail_details.listing_id = listings.id").
		Distinct().
		Order("retail_details.condition ASC").
		Pluck("retail_details.condition", &conditions).Error
	return conditions, err
}

func (r *listingRepo) DistinctOriginRegions(ctx context.Context) ([]string, error) {
	var regions []string
	err := r.baseAvailable(ctx).
		Joins("JOIN agri_details ON agri_details.listing_id = listings.id").
		Distinct().
		Order("agri_details.origin_region ASC").
		Pluck("agri_details.origin_region", &regions).Error
	return regions, err
}

func (r *listingRepo) UpdateStatusIf(ctx context.Context, id int64, from, to model.ListingStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ==================== Query helpers ====================

func (r *listingRepo) baseAvailable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Where("listings.status = ?", model.StatusAvailable)
}

func (r *listingRepo) applyGeography(query *gorm.DB, region, city string) *gorm.DB {
	if region == "" && city == "" {
		return query
	}
	query = query.Joins("JOIN locations ON locations.id = listings.location_id")
	if region != "" {
		query = query.Where("locations.region = ?", region)
	}
	if city != "" {
		query = query.Where("locations.city = ?", city)
	}
	return query
}

func (r *listingRepo) applyFilter(query *gorm.DB, filter CatalogueFilter) *gorm.DB {
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("listings.category_id IN ?", filter.CategoryIDs)
	}
	query = r.applyGeography(query, filter.Region, filter.City)
	if filter.Condition != "" {
		query = query.
			Joins("JOIN retail_details ON retail_details.listing_id = listings.id").
			Where("retail_details.condition = ?", filter.Condition)
	}
	if filter.OriginRegion != "" {
		query = query.
			Joins("JOIN agri_details ON agri_details.listing_id = listings.id").
			Where("agri_details.origin_region = ?", filter.OriginRegion)
	}
	return query
}
