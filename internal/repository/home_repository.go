package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realtor/internal/model"
)

// HomeFilter is a partial predicate over home listings. Zero-valued
// fields are not applied.
type HomeFilter struct {
	City         string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	PropertyType model.PropertyType
}

// HomeRepository defines home persistence operations.
type HomeRepository interface {
	Create(ctx context.Context, home *model.Home) error
	CreateWithImages(ctx context.Context, home *model.Home, imageURLs []string) error
	Update(ctx context.Context, home *model.Home) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Home, error)
	FindWithFilter(ctx context.Context, filter HomeFilter) ([]model.Home, error)
	FindRealtorByHomeID(ctx context.Context, id uint) (*model.User, error)
}

type homeRepository struct {
	db *gorm.DB
}

// NewHomeRepository creates a new home repository.
func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &homeRepository{db: db}
}

// preloadCoverImages loads a home's images in a stable order so the
// first row is always the same image for a given store state.
func preloadCoverImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.id ASC")
}

// Create creates a new home row. Associated images are not touched.
func (r *homeRepository) Create(ctx context.Context, home *model.Home) error {
	return r.db.WithContext(ctx).Omit("Images").Create(home).Error
}

// CreateWithImages creates the home row and one image row per URL in a
// single transaction. home.Images is left unpopulated; callers wanting
// the stored images must re-fetch.
func (r *homeRepository) CreateWithImages(ctx context.Context, home *model.Home, imageURLs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Create(home).Error; err != nil {
			return err
		}
		if len(imageURLs) == 0 {
			return nil
		}
		images := make([]model.Image, 0, len(imageURLs))
		for _, url := range imageURLs {
			images = append(images, model.Image{URL: url, HomeID: home.ID})
		}
		return tx.CreateInBatches(images, 100).Error
	})
}

// Update updates an existing home row.
func (r *homeRepository) Update(ctx context.Context, home *model.Home) error {
	return r.db.WithContext(ctx).Omit("Images").Save(home).Error
}

// Delete removes a home row. Image rows must be removed beforehand; the
// schema has no cascade.
func (r *homeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Home{}, id).Error
}

// FindByID finds a home by ID with its images preloaded in cover order.
func (r *homeRepository) FindByID(ctx context.Context, id uint) (*model.Home, error) {
	var home model.Home
	if err := r.db.WithContext(ctx).Preload("Images", preloadCoverImages).
		Where("id = ?", id).First(&home).Error; err != nil {
		return nil, err
	}
	return &home, nil
}

// FindWithFilter finds homes matching the filter, images preloaded in
// cover order. An empty result is not an error at this layer.
func (r *homeRepository) FindWithFilter(ctx context.Context, filter HomeFilter) ([]model.Home, error) {
	query := r.db.WithContext(ctx).Model(&model.Home{}).Preload("Images", preloadCoverImages)

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}

	var homes []model.Home
	if err := query.Find(&homes).Error; err != nil {
		return nil, err
	}
	return homes, nil
}

// FindRealtorByHomeID returns the realtor owning the home.
func (r *homeRepository) FindRealtorByHomeID(ctx context.Context, id uint) (*model.User, error) {
	var home model.Home
	if err := r.db.WithContext(ctx).Preload("Realtor").
		Where("id = ?", id).First(&home).Error; err != nil {
		return nil, err
	}
	return &home.Realtor, nil
}
