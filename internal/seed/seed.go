// Package seed loads demo users and home listings into the database
// from a JSON document. Used by cmd/seed and the seed endpoint.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"realtor/internal/model"
	"realtor/internal/repository"
)

const bcryptCost = 10

// User is a user entry in a seed document.
type User struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Password string         `json:"password"`
	UserType model.UserType `json:"userType"`
}

// Home is a home entry in a seed document. RealtorEmail must match a
// user in the same document or one already in the database.
type Home struct {
	Address           string             `json:"address"`
	City              string             `json:"city"`
	Price             string             `json:"price"`
	PropertyType      model.PropertyType `json:"propertyType"`
	NumberOfBedrooms  int                `json:"numberOfBedrooms"`
	NumberOfBathrooms int                `json:"numberOfBathrooms"`
	LandSize          float64            `json:"landSize"`
	RealtorEmail      string             `json:"realtorEmail"`
	Images            []string           `json:"images"`
}

// Document is the root of a seed file.
type Document struct {
	Users []User `json:"users"`
	Homes []Home `json:"homes"`
}

// Result reports what Apply created.
type Result struct {
	UsersCreated int `json:"users_created"`
	UsersSkipped int `json:"users_skipped"`
	HomesCreated int `json:"homes_created"`
	HomesSkipped int `json:"homes_skipped"`
}

// Apply inserts the document's users and homes. Users are keyed by
// email: existing ones are left untouched. Homes with an unknown
// realtor email or invalid fields are skipped, not fatal.
func Apply(ctx context.Context, userRepo repository.UserRepository, homeRepo repository.HomeRepository, doc *Document) (*Result, error) {
	res := &Result{}

	for _, u := range doc.Users {
		existing, err := userRepo.FindByEmail(ctx, u.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return res, fmt.Errorf("check user %s: %w", u.Email, err)
		}
		if existing != nil {
			res.UsersSkipped++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcryptCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		userType := u.UserType
		if !userType.Valid() {
			userType = model.UserTypeBuyer
		}
		user := &model.User{
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			PasswordHash: string(hashed),
			UserType:     userType,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return res, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		res.UsersCreated++
	}

	for _, h := range doc.Homes {
		realtor, err := userRepo.FindByEmail(ctx, h.RealtorEmail)
		if err != nil {
			res.HomesSkipped++
			continue
		}

		price, err := decimal.NewFromString(h.Price)
		if err != nil || !h.PropertyType.Valid() {
			res.HomesSkipped++
			continue
		}

		home := &model.Home{
			Address:           h.Address,
			City:              h.City,
			Price:             price,
			PropertyType:      h.PropertyType,
			NumberOfBedrooms:  h.NumberOfBedrooms,
			NumberOfBathrooms: h.NumberOfBathrooms,
			LandSize:          h.LandSize,
			RealtorID:         realtor.ID,
		}
		if err := homeRepo.CreateWithImages(ctx, home, h.Images); err != nil {
			return res, fmt.Errorf("create home %q: %w", h.Address, err)
		}
		res.HomesCreated++
	}

	return res, nil
}
