package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"realtor/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// One in-memory database per connection, so keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}, &model.Home{}, &model.Image{}, &model.Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestRealtor(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	realtor := &model.User{
		Name:         "Laila Hassan",
		Phone:        "(415) 555-0134",
		Email:        "laila.realtor@example.com",
		PasswordHash: "hashed",
		UserType:     model.UserTypeRealtor,
	}
	if err := db.Create(realtor).Error; err != nil {
		t.Fatalf("create realtor: %v", err)
	}
	return realtor
}

func newTestHome(realtorID uint, city string, price string, propertyType model.PropertyType) *model.Home {
	return &model.Home{
		Address:           "2345 Santa Monica Blvd",
		City:              city,
		Price:             decimal.RequireFromString(price),
		PropertyType:      propertyType,
		NumberOfBedrooms:  4,
		NumberOfBathrooms: 3,
		LandSize:          4100,
		RealtorID:         realtorID,
	}
}

func TestHomeRepository_CreateWithImages(t *testing.T) {
	db := newTestDB(t)
	realtor := createTestRealtor(t, db)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	home := newTestHome(realtor.ID, "Los Angeles", "780000.00", model.PropertyTypeResidential)
	urls := []string{"first.jpg", "second.jpg"}

	err := repo.CreateWithImages(ctx, home, urls)
	assert.NoError(t, err)
	assert.NotZero(t, home.ID)
	assert.Empty(t, home.Images)

	found, err := repo.FindByID(ctx, home.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Los Angeles", found.City)
	assert.True(t, found.Price.Equal(home.Price))
	assert.Len(t, found.Images, 2)
	assert.Equal(t, "first.jpg", found.Images[0].URL)
	assert.Equal(t, "second.jpg", found.Images[1].URL)
}

func TestHomeRepository_FindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewHomeRepository(db)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHomeRepository_FindWithFilter(t *testing.T) {
	db := newTestDB(t)
	realtor := createTestRealtor(t, db)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	seedHomes := []*model.Home{
		newTestHome(realtor.ID, "Toronto", "300000.00", model.PropertyTypeResidential),
		newTestHome(realtor.ID, "Toronto", "500000.00", model.PropertyTypeCondo),
		newTestHome(realtor.ID, "Vancouver", "350000.00", model.PropertyTypeResidential),
	}
	for _, h := range seedHomes {
		assert.NoError(t, repo.Create(ctx, h))
	}

	t.Run("no filter returns all", func(t *testing.T) {
		homes, err := repo.FindWithFilter(ctx, HomeFilter{})
		assert.NoError(t, err)
		assert.Len(t, homes, 3)
	})

	t.Run("by city", func(t *testing.T) {
		homes, err := repo.FindWithFilter(ctx, HomeFilter{City: "Toronto"})
		assert.NoError(t, err)
		assert.Len(t, homes, 2)
	})

	t.Run("by price range", func(t *testing.T) {
		min := decimal.RequireFromString("320000.00")
		max := decimal.RequireFromString("400000.00")
		homes, err := repo.FindWithFilter(ctx, HomeFilter{MinPrice: &min, MaxPrice: &max})
		assert.NoError(t, err)
		assert.Len(t, homes, 1)
		assert.Equal(t, "Vancouver", homes[0].City)
	})

	t.Run("by property type", func(t *testing.T) {
		homes, err := repo.FindWithFilter(ctx, HomeFilter{PropertyType: model.PropertyTypeCondo})
		assert.NoError(t, err)
		assert.Len(t, homes, 1)
		assert.True(t, homes[0].Price.Equal(decimal.RequireFromString("500000.00")))
	})

	t.Run("combined filters with no match", func(t *testing.T) {
		homes, err := repo.FindWithFilter(ctx, HomeFilter{City: "Vancouver", PropertyType: model.PropertyTypeCondo})
		assert.NoError(t, err)
		assert.Empty(t, homes)
	})
}

func TestHomeRepository_FindRealtorByHomeID(t *testing.T) {
	db := newTestDB(t)
	realtor := createTestRealtor(t, db)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	home := newTestHome(realtor.ID, "Toronto", "520000.00", model.PropertyTypeCondo)
	assert.NoError(t, repo.Create(ctx, home))

	found, err := repo.FindRealtorByHomeID(ctx, home.ID)
	assert.NoError(t, err)
	assert.Equal(t, realtor.ID, found.ID)
	assert.Equal(t, realtor.Email, found.Email)

	_, err = repo.FindRealtorByHomeID(ctx, home.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHomeRepository_DeleteLeavesNoOrphanImages(t *testing.T) {
	db := newTestDB(t)
	realtor := createTestRealtor(t, db)
	homeRepo := NewHomeRepository(db)
	imageRepo := NewImageRepository(db)
	ctx := context.Background()

	home := newTestHome(realtor.ID, "Los Angeles", "780000.00", model.PropertyTypeResidential)
	assert.NoError(t, homeRepo.CreateWithImages(ctx, home, []string{"a.jpg", "b.jpg"}))

	count, err := imageRepo.CountByHomeID(ctx, home.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	assert.NoError(t, imageRepo.DeleteByHomeID(ctx, home.ID))
	assert.NoError(t, homeRepo.Delete(ctx, home.ID))

	count, err = imageRepo.CountByHomeID(ctx, home.ID)
	assert.NoError(t, err)
	assert.Zero(t, count)

	_, err = homeRepo.FindByID(ctx, home.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHomeRepository_Update(t *testing.T) {
	db := newTestDB(t)
	realtor := createTestRealtor(t, db)
	repo := NewHomeRepository(db)
	ctx := context.Background()

	home := newTestHome(realtor.ID, "Toronto", "520000.00", model.PropertyTypeCondo)
	assert.NoError(t, repo.CreateWithImages(ctx, home, []string{"cover.jpg"}))

	home.City = "Osaka"
	home.NumberOfBedrooms = 5
	assert.NoError(t, repo.Update(ctx, home))

	found, err := repo.FindByID(ctx, home.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Osaka", found.City)
	assert.Equal(t, 5, found.NumberOfBedrooms)
	// Images survive an update untouched.
	assert.Len(t, found.Images, 1)
}
