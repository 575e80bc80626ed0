package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"realtor/internal/auth"
	apperrors "realtor/internal/errors"
	"realtor/internal/model"
	"realtor/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable
	// to the caller so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// SignupParams carries the fields needed to register a user. ProductKey
// is required when UserType is REALTOR or ADMIN.
type SignupParams struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	UserType   model.UserType
	ProductKey string
}

// AuthService handles signup, signin, and token lifecycle operations.
type AuthService interface {
	Signup(ctx context.Context, params SignupParams) (accessToken, refreshToken string, user *model.User, err error)
	Signin(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	GenerateProductKey(email string, userType model.UserType) (string, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo    repository.UserRepository
	jwtService  *auth.JWTService
	productKeys *auth.ProductKeyService
	tokenStore  auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, productKeys *auth.ProductKeyService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtService:  jwtService,
		productKeys: productKeys,
		tokenStore:  tokenStore,
	}
}

// Signup registers a new user. Privileged roles must present a product
// key that verifies against the user's email and requested role. The
// password is hashed before it is stored; the plaintext never leaves
// this function.
func (s *authService) Signup(ctx context.Context, params SignupParams) (string, string, *model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, params.Email)
	if err == nil && existing != nil {
		return "", "", nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", "", nil, fmt.Errorf("check user existence: %w", err)
	}

	if params.UserType != model.UserTypeBuyer {
		if params.ProductKey == "" || !s.productKeys.Verify(params.ProductKey, params.Email, params.UserType) {
			return "", "", nil, apperrors.ErrInvalidProductKey
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcryptCost)
	if err != nil {
		return "", "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: string(hashedPassword),
		UserType:     params.UserType,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", "", nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Signin authenticates a user and returns access and refresh tokens.
func (s *authService) Signin(ctx context.Context, email, password string) (string, string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", nil, ErrInvalidCredentials
		}
		return "", "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// issueTokens generates the access/refresh token pair for a user and
// records the refresh token in the store.
func (s *authService) issueTokens(ctx context.Context, user *model.User) (string, string, *model.User, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Name)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Name)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Name, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// GenerateProductKey returns the pre-shared key that authorizes the
// given email to sign up with the given role. Handed out of band.
func (s *authService) GenerateProductKey(email string, userType model.UserType) (string, error) {
	return s.productKeys.Generate(email, userType)
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedUserID, storedName, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if storedUserID != claims.UserID || storedName != claims.Name {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(claims.UserID, claims.Name)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}

	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
