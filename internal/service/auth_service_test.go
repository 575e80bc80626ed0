package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"realtor/internal/auth"
	apperrors "realtor/internal/errors"
	"realtor/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, name string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, name, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository, store *MockTokenStore) (AuthService, *auth.JWTService, *auth.ProductKeyService) {
	jwtService := auth.NewJWTService("test-secret")
	productKeys := auth.NewProductKeyService("test-product-secret")
	return NewAuthService(repo, jwtService, productKeys, store), jwtService, productKeys
}

func TestAuthService_Signup(t *testing.T) {
	validKeyFor := func(keys *auth.ProductKeyService, email string, userType model.UserType) string {
		key, err := keys.Generate(email, userType)
		assert.NoError(t, err)
		return key
	}

	tests := []struct {
		name          string
		params        SignupParams
		productKey    func(*auth.ProductKeyService) string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name: "successful buyer signup",
			params: SignupParams{
				Name:     "Test Buyer",
				Email:    "buyer@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeBuyer,
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "buyer@example.com").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 7
				}).Return(nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "Test Buyer", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already registered",
			params: SignupParams{
				Name:     "Dup",
				Email:    "existing@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeBuyer,
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "realtor signup with valid product key",
			params: SignupParams{
				Name:     "Test Realtor",
				Email:    "realtor@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeRealtor,
			},
			productKey: func(keys *auth.ProductKeyService) string {
				return validKeyFor(keys, "realtor@example.com", model.UserTypeRealtor)
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "realtor@example.com").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "Test Realtor", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "realtor signup without product key",
			params: SignupParams{
				Name:     "No Key",
				Email:    "nokey@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeRealtor,
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "nokey@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidProductKey,
		},
		{
			name: "realtor signup with key issued for another email",
			params: SignupParams{
				Name:     "Wrong Key",
				Email:    "wrongkey@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeRealtor,
			},
			productKey: func(keys *auth.ProductKeyService) string {
				return validKeyFor(keys, "someone-else@example.com", model.UserTypeRealtor)
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "wrongkey@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidProductKey,
		},
		{
			name: "admin signup with valid product key",
			params: SignupParams{
				Name:     "Test Admin",
				Email:    "admin@example.com",
				Phone:    "(555) 123-4567",
				Password: "password123",
				UserType: model.UserTypeAdmin,
			},
			productKey: func(keys *auth.ProductKeyService) string {
				return validKeyFor(keys, "admin@example.com", model.UserTypeAdmin)
			},
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "Test Admin", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			service, jwtService, productKeys := newTestAuthService(mockRepo, mockTokenStore)

			params := tt.params
			if tt.productKey != nil {
				params.ProductKey = tt.productKey(productKeys)
			}

			accessToken, refreshToken, user, err := service.Signup(context.Background(), params)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, params.Email, user.Email)
				assert.Equal(t, params.UserType, user.UserType)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, params.Password, user.PasswordHash)

				// Access token must decode to the new user's id and name.
				claims, err := jwtService.ValidateToken(accessToken)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, params.Name, claims.Name)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Signin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful signin",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           42,
					Name:         "Test User",
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(42), "Test User", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           42,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			service, _, _ := newTestAuthService(mockRepo, mockTokenStore)

			accessToken, refreshToken, user, err := service.Signin(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				// Unknown email and wrong password come back identical.
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_SigninRepositoryFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockTokenStore := new(MockTokenStore)
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, assert.AnError)

	service, _, _ := newTestAuthService(mockRepo, mockTokenStore)

	_, _, _, err := service.Signin(context.Background(), "test@example.com", "password123")

	// A database outage is an internal failure, not a credentials problem.
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, assert.AnError)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		service, jwtService, _ := newTestAuthService(mockRepo, mockTokenStore)

		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(42, "Test User")
		assert.NoError(t, err)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(42), "Test User", nil)

		accessToken, err := service.RefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)

		claims, err := jwtService.ValidateToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "Test User", claims.Name)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("unknown token id is rejected", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		service, jwtService, _ := newTestAuthService(new(MockUserRepository), mockTokenStore)

		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(42, "Test User")
		assert.NoError(t, err)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		_, err = service.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		service, _, _ := newTestAuthService(new(MockUserRepository), new(MockTokenStore))

		_, err := service.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	mockTokenStore := new(MockTokenStore)
	service, jwtService, _ := newTestAuthService(new(MockUserRepository), mockTokenStore)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(42, "Test User")
	assert.NoError(t, err)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)

	err = service.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_GenerateProductKey(t *testing.T) {
	service, _, productKeys := newTestAuthService(new(MockUserRepository), new(MockTokenStore))

	key, err := service.GenerateProductKey("candidate@example.com", model.UserTypeRealtor)
	assert.NoError(t, err)
	assert.NotEmpty(t, key)

	assert.True(t, productKeys.Verify(key, "candidate@example.com", model.UserTypeRealtor))
	assert.False(t, productKeys.Verify(key, "candidate@example.com", model.UserTypeAdmin))
	assert.False(t, productKeys.Verify(key, "other@example.com", model.UserTypeRealtor))
}
