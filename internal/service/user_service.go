package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"realtor/internal/cache"
	"realtor/internal/dto"
	apperrors "realtor/internal/errors"
	"realtor/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user profile lookups. Profiles are cached because
// role-guarded routes resolve the caller's profile on every request.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	cache    *cache.Client
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return cache.Key("user", id)
}

// GetProfile returns the public-safe fields of a user.
func (s *userService) GetProfile(ctx context.Context, id uint) (dto.UserResponse, error) {
	var cached dto.UserResponse
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return dto.UserResponse{}, apperrors.ErrUserNotFound
		}
		return dto.UserResponse{}, fmt.Errorf("find user: %w", err)
	}

	profile := dto.NewUserResponse(user)
	s.cache.SetJSON(ctx, s.cacheKey(id), profile, userCacheTTL)
	return profile, nil
}
