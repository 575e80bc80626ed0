package dto

import "realtor/internal/model"

// UserResponse is the public-safe projection of a user: no password
// hash, no timestamps.
type UserResponse struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	UserType model.UserType `json:"userType,omitempty"`
}

// NewUserResponse maps a user row to its public shape.
func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		UserType: user.UserType,
	}
}

// RealtorResponse is the projection of a listing's realtor exposed to
// buyers: contact fields only, no role.
type RealtorResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewRealtorResponse maps a user row to the realtor contact shape.
func NewRealtorResponse(user *model.User) RealtorResponse {
	return RealtorResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
	}
}
