package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realtor/internal/cache"
	"realtor/internal/dto"
	apperrors "realtor/internal/errors"
	"realtor/internal/model"
	"realtor/internal/repository"
)

const homeCacheTTL = 5 * time.Minute

// CreateHomeParams carries the fields needed to create a listing.
type CreateHomeParams struct {
	Address           string
	City              string
	Price             decimal.Decimal
	PropertyType      model.PropertyType
	NumberOfBedrooms  int
	NumberOfBathrooms int
	LandSize          float64
	ImageURLs         []string
}

// UpdateHomeParams carries a partial update; nil fields are left unchanged.
type UpdateHomeParams struct {
	Address           *string
	City              *string
	Price             *decimal.Decimal
	PropertyType      *model.PropertyType
	NumberOfBedrooms  *int
	NumberOfBathrooms *int
	LandSize          *float64
}

// HomeService handles listing search, CRUD, and buyer inquiries.
type HomeService interface {
	GetHomes(ctx context.Context, filter repository.HomeFilter) ([]dto.HomeResponse, error)
	GetHomeByID(ctx context.Context, id uint) (dto.HomeResponse, error)
	CreateHome(ctx context.Context, params CreateHomeParams, realtorID uint) (dto.HomeResponse, error)
	UpdateHomeByID(ctx context.Context, id uint, params UpdateHomeParams) (dto.HomeResponse, error)
	DeleteHomeByID(ctx context.Context, id uint) error
	GetRealtorByHomeID(ctx context.Context, id uint) (dto.RealtorResponse, error)
	Inquire(ctx context.Context, buyerID, homeID uint, body string) (dto.MessageResponse, error)
	GetHomeMessages(ctx context.Context, homeID uint) ([]dto.HomeMessage, error)
}

type homeService struct {
	homeRepo    repository.HomeRepository
	imageRepo   repository.ImageRepository
	messageRepo repository.MessageRepository
	cache       *cache.Client
}

// NewHomeService creates a new home service.
func NewHomeService(homeRepo repository.HomeRepository, imageRepo repository.ImageRepository, messageRepo repository.MessageRepository, cache *cache.Client) HomeService {
	return &homeService{
		homeRepo:    homeRepo,
		imageRepo:   imageRepo,
		messageRepo: messageRepo,
		cache:       cache,
	}
}

func (s *homeService) cacheKey(id uint) string {
	return cache.Key("home", id)
}

// GetHomes returns all listings matching the filter, shaped for the
// caller. An empty result is an error, not an empty list.
func (s *homeService) GetHomes(ctx context.Context, filter repository.HomeFilter) ([]dto.HomeResponse, error) {
	homes, err := s.homeRepo.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find homes: %w", err)
	}
	if len(homes) == 0 {
		return nil, apperrors.ErrNoHomesFound
	}
	return dto.NewHomeResponses(homes), nil
}

// GetHomeByID returns a single listing shaped for the caller, with
// short-lived caching.
func (s *homeService) GetHomeByID(ctx context.Context, id uint) (dto.HomeResponse, error) {
	var cached dto.HomeResponse
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return cached, nil
	}

	home, err := s.homeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return dto.HomeResponse{}, apperrors.ErrHomeNotFound
		}
		return dto.HomeResponse{}, fmt.Errorf("find home: %w", err)
	}

	resp := dto.NewHomeResponse(home)
	s.cache.SetJSON(ctx, s.cacheKey(id), resp, homeCacheTTL)

	return resp, nil
}

// CreateHome persists a new listing scoped to the realtor, with one
// image row per supplied URL. The returned shape does not carry a cover
// image; callers wanting it must re-fetch.
func (s *homeService) CreateHome(ctx context.Context, params CreateHomeParams, realtorID uint) (dto.HomeResponse, error) {
	home := &model.Home{
		Address:           params.Address,
		City:              params.City,
		Price:             params.Price,
		PropertyType:      params.PropertyType,
		NumberOfBedrooms:  params.NumberOfBedrooms,
		NumberOfBathrooms: params.NumberOfBathrooms,
		LandSize:          params.LandSize,
		RealtorID:         realtorID,
	}

	if err := s.homeRepo.CreateWithImages(ctx, home, params.ImageURLs); err != nil {
		return dto.HomeResponse{}, fmt.Errorf("create home: %w", err)
	}

	return dto.NewHomeResponse(home), nil
}

// UpdateHomeByID applies the supplied fields to an existing listing and
// returns the updated shape.
func (s *homeService) UpdateHomeByID(ctx context.Context, id uint, params UpdateHomeParams) (dto.HomeResponse, error) {
	home, err := s.homeRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return dto.HomeResponse{}, apperrors.ErrHomeNotFound
		}
		return dto.HomeResponse{}, fmt.Errorf("find home: %w", err)
	}

	if params.Address != nil {
		home.Address = *params.Address
	}
	if params.City != nil {
		home.City = *params.City
	}
	if params.Price != nil {
		home.Price = *params.Price
	}
	if params.PropertyType != nil {
		home.PropertyType = *params.PropertyType
	}
	if params.NumberOfBedrooms != nil {
		home.NumberOfBedrooms = *params.NumberOfBedrooms
	}
	if params.NumberOfBathrooms != nil {
		home.NumberOfBathrooms = *params.NumberOfBathrooms
	}
	if params.LandSize != nil {
		home.LandSize = *params.LandSize
	}

	if err := s.homeRepo.Update(ctx, home); err != nil {
		return dto.HomeResponse{}, fmt.Errorf("update home: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return dto.NewHomeResponse(home), nil
}

// DeleteHomeByID removes a listing. Images go first so a failure
// between the two deletes can never strand an image without its home.
func (s *homeService) DeleteHomeByID(ctx context.Context, id uint) error {
	if _, err := s.homeRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrHomeNotFound
		}
		return fmt.Errorf("find home: %w", err)
	}

	if err := s.imageRepo.DeleteByHomeID(ctx, id); err != nil {
		return fmt.Errorf("delete home images: %w", err)
	}
	if err := s.homeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete home: %w", err)
	}

	s.cache.Delete(ctx, s.cacheKey(id))

	return nil
}

// GetRealtorByHomeID returns the contact fields of the realtor owning
// the home.
func (s *homeService) GetRealtorByHomeID(ctx context.Context, id uint) (dto.RealtorResponse, error) {
	realtor, err := s.homeRepo.FindRealtorByHomeID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return dto.RealtorResponse{}, apperrors.ErrHomeNotFound
		}
		return dto.RealtorResponse{}, fmt.Errorf("find realtor: %w", err)
	}
	return dto.NewRealtorResponse(realtor), nil
}

// Inquire records a buyer's message about a home, addressed to the
// home's realtor.
func (s *homeService) Inquire(ctx context.Context, buyerID, homeID uint, body string) (dto.MessageResponse, error) {
	realtor, err := s.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		return dto.MessageResponse{}, err
	}

	message := &model.Message{
		Body:      body,
		HomeID:    homeID,
		BuyerID:   buyerID,
		RealtorID: realtor.ID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return dto.MessageResponse{}, fmt.Errorf("create message: %w", err)
	}

	return dto.NewMessageResponse(message), nil
}

// GetHomeMessages returns all inquiries for a home with each buyer's
// public fields.
func (s *homeService) GetHomeMessages(ctx context.Context, homeID uint) ([]dto.HomeMessage, error) {
	if _, err := s.homeRepo.FindByID(ctx, homeID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrHomeNotFound
		}
		return nil, fmt.Errorf("find home: %w", err)
	}

	messages, err := s.messageRepo.ListByHomeID(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]dto.HomeMessage, 0, len(messages))
	for i := range messages {
		out = append(out, dto.NewHomeMessage(&messages[i]))
	}
	return out, nil
}
