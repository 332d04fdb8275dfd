package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trustcam_backend/internal/model"
)

// LocationRepository maintains the flat location directory. Rows are never
// updated; deletion is refused while a listing or profile still points at
// the row.
type LocationRepository interface {
	List(ctx context.Context) ([]model.Location, error)
	GetByID(ctx context.Context, id int64) (*model.Location, error)
	Create(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id int64) error
}

type locationRepo struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Order("region ASC, city ASC, district ASC").
		Find(&locations).Error
	return locations, err
}

func (r *locationRepo) GetByID(ctx context.Context, id int64) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).First(&location, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepo) Create(ctx context.Context, location *model.Location) error {
	var existing int64
	err := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Where("region = ? AND city = ? AND district = ?",
			location.Region, location.City, location.District).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return model.ErrDuplicateLocation
	}
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepo) Delete(ctx context.Context, id int64) error {
	var referenced int64
	err := r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Where("location_id = ?", id).
		Count(&referenced).Error
	if err != nil {
		return err
	}
	if referenced == 0 {
		err = r.db.WithContext(ctx).
			Model(&model.UserProfile{}).
			Where("default_location_id = ?", id).
			Count(&referenced).Error
		if err != nil {
			return err
		}
	}
	if referenced > 0 {
		return model.ErrLocationInUse
	}

	result := r.db.WithContext(ctx).Delete(&model.Location{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrLocationNotFound
	}
	return nil
}
