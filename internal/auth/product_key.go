package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"realtor/internal/model"
)

const productKeyBcryptCost = 10

// ProductKeyService issues and verifies the pre-shared keys that gate
// realtor and admin signup. A key is a bcrypt hash of the candidate's
// email, the requested role, and a server-side secret; it is handed out
// of band and verified (never decrypted) during signup.
type ProductKeyService struct {
	secret string
}

// NewProductKeyService creates a product key service with the given secret.
func NewProductKeyService(secret string) *ProductKeyService {
	return &ProductKeyService{secret: secret}
}

func (s *ProductKeyService) material(email string, userType model.UserType) string {
	return fmt.Sprintf("%s-%s-%s", email, userType, s.secret)
}

// Generate returns a product key for the given email and role.
func (s *ProductKeyService) Generate(email string, userType model.UserType) (string, error) {
	key, err := bcrypt.GenerateFromPassword([]byte(s.material(email, userType)), productKeyBcryptCost)
	if err != nil {
		return "", fmt.Errorf("generate product key: %w", err)
	}
	return string(key), nil
}

// Verify reports whether key is a valid product key for the email and role.
func (s *ProductKeyService) Verify(key, email string, userType model.UserType) bool {
	return bcrypt.CompareHashAndPassword([]byte(key), []byte(s.material(email, userType))) == nil
}
