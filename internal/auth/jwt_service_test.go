package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realtor/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(42, "Laila")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Laila", claims.Name)
	assert.Empty(t, claims.ID)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateRefreshToken(42, "Laila")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := service.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(1, "Omar")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExtractTokenIDRejectsAccessToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateAccessToken(1, "Omar")
	assert.NoError(t, err)

	_, err = service.ExtractTokenID(token)
	assert.Error(t, err)
}

func TestProductKeyService_GenerateAndVerify(t *testing.T) {
	keys := NewProductKeyService("product-secret")

	key, err := keys.Generate("laila@example.com", model.UserTypeRealtor)
	assert.NoError(t, err)
	assert.NotEmpty(t, key)

	assert.True(t, keys.Verify(key, "laila@example.com", model.UserTypeRealtor))
	assert.False(t, keys.Verify(key, "other@example.com", model.UserTypeRealtor))
	assert.False(t, keys.Verify(key, "laila@example.com", model.UserTypeAdmin))
	assert.False(t, NewProductKeyService("other-secret").Verify(key, "laila@example.com", model.UserTypeRealtor))
}
