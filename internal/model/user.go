package model

import "time"

// UserType classifies what a user is allowed to do.
type UserType string

const (
	UserTypeBuyer   UserType = "BUYER"
	UserTypeRealtor UserType = "REALTOR"
	UserTypeAdmin   UserType = "ADMIN"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeBuyer, UserTypeRealtor, UserTypeAdmin:
		return true
	}
	return false
}

// User represents a registered buyer, realtor, or admin.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:20;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	UserType     UserType  `json:"user_type" gorm:"type:varchar(20);not null;default:'BUYER';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Homes []Home `json:"homes,omitempty" gorm:"foreignKey:RealtorID"`
}
