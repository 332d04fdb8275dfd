package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trustcam_backend/internal/model"
)

// RatingRepository persists peer trust ratings and aggregates them per
// target user.
type RatingRepository interface {
	// Upsert writes the rating, overwriting any existing rating by the same
	// author for the same target instead of duplicating it.
	Upsert(ctx context.Context, rating *model.TrustRating) error
	AggregateForTarget(ctx context.Context, targetID int64) (average float64, count int64, err error)
	ListForTarget(ctx context.Context, targetID int64) ([]model.TrustRating, error)
}

type ratingRepo struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Upsert(ctx context.Context, rating *model.TrustRating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "author_id"}, {Name: "target_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "comment", "updated_at"}),
		}).
		Create(rating).Error
}

func (r *ratingRepo) AggregateForTarget(ctx context.Context, targetID int64) (float64, int64, error) {
	var row struct {
		Average float64
		Total   int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.TrustRating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS total").
		Where("target_id = ?", targetID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Average, row.Total, nil
}

func (r *ratingRepo) ListForTarget(ctx context.Context, targetID int64) ([]model.TrustRating, error) {
	var ratings []model.TrustRating
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("updated_at DESC").
		Find(&ratings).Error
	return ratings, err
}
