package repository

import (
	"context"

	"gorm.io/gorm"

	"realtor/internal/model"
)

// ImageRepository defines image persistence operations. Image creation
// happens inside HomeRepository.CreateWithImages so it shares the
// home's transaction.
type ImageRepository interface {
	DeleteByHomeID(ctx context.Context, homeID uint) error
	CountByHomeID(ctx context.Context, homeID uint) (int64, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// DeleteByHomeID removes all images attached to a home.
func (r *imageRepository) DeleteByHomeID(ctx context.Context, homeID uint) error {
	return r.db.WithContext(ctx).Where("home_id = ?", homeID).Delete(&model.Image{}).Error
}

// CountByHomeID counts the images attached to a home.
func (r *imageRepository) CountByHomeID(ctx context.Context, homeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Image{}).
		Where("home_id = ?", homeID).Count(&count).Error
	return count, err
}
