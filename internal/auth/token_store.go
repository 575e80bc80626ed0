package auth

import (
	"context"
	"fmt"
	"time"

	"realtor/internal/cache"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	accessTokenKeyPrefix  = "blacklist:access_token:"
)

// TokenStoreInterface defines the interface for token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, name string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uint, name string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
	BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// refreshTokenData is what a stored refresh token resolves to.
type refreshTokenData struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// TokenStore handles storage and retrieval of tokens in Redis.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, name string, ttl time.Duration) error {
	s.cache.SetJSON(ctx, refreshTokenKeyPrefix+tokenID, refreshTokenData{
		UserID: userID,
		Name:   name,
	}, ttl)
	return nil
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	var data refreshTokenData
	if !s.cache.GetJSON(ctx, refreshTokenKeyPrefix+tokenID, &data) {
		return 0, "", fmt.Errorf("refresh token not found")
	}
	return data.UserID, data.Name, nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
	return nil
}

// BlacklistAccessToken adds an access token to the blacklist until it expires.
func (s *TokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.cache.SetJSON(ctx, accessTokenKeyPrefix+tokenID, true, ttl)
	return nil
}

// IsAccessTokenBlacklisted checks if an access token is blacklisted.
func (s *TokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	var marked bool
	if !s.cache.GetJSON(ctx, accessTokenKeyPrefix+tokenID, &marked) {
		return false, nil
	}
	return marked, nil
}
