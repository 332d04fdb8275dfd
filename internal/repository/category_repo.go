package repository

import (
	"context"

	"gorm.io/gorm"

	"trustcam_backend/internal/model"
)

// CategoryRepository reads the category tree. Categories are maintained by
// admin tooling; the catalogue only ever reads them.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// ListAll returns every category ordered by name ascending, the order the
// sidebar renders in.
func (r *categoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}
