package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trustcam_backend/internal/model"
)

// ProfileRepository persists user profiles. Profiles are created lazily on
// first read, mirroring the web flow where a fresh account has no profile
// row yet.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.UserProfile, error)
	GetOrCreate(ctx context.Context, userID int64) (*model.UserProfile, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).
		Preload("DefaultLocation").
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetOrCreate(ctx context.Context, userID int64) (*model.UserProfile, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, err
	}

	created := &model.UserProfile{
		UserID:           userID,
		PreferredPayment: model.PaymentMobileMoney,
		SellerType:       model.SellerIndividual,
	}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func (r *profileRepo) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
}
