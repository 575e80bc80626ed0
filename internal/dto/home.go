// Package dto defines the externally visible shapes of entities,
// decoupled from their storage representation. Mapping functions are
// pure: no validation, no side effects, well-formed store output assumed.
package dto

import (
	"github.com/shopspring/decimal"

	"realtor/internal/model"
)

// HomeResponse is the flattened external projection of a home listing.
// Internal timestamps, the realtor foreign key, and the raw image
// relation are deliberately absent; a single cover image URL stands in
// for the image collection.
type HomeResponse struct {
	ID                uint               `json:"id"`
	Address           string             `json:"address"`
	City              string             `json:"city"`
	Price             decimal.Decimal    `json:"price"`
	PropertyType      model.PropertyType `json:"propertyType"`
	NumberOfBedrooms  int                `json:"numberOfBedrooms"`
	NumberOfBathrooms int                `json:"numberOfBathrooms"`
	Image             string             `json:"image,omitempty"`
}

// NewHomeResponse maps a home row to its external shape. The cover image
// is the first associated image, if any were loaded.
func NewHomeResponse(home *model.Home) HomeResponse {
	resp := HomeResponse{
		ID:                home.ID,
		Address:           home.Address,
		City:              home.City,
		Price:             home.Price,
		PropertyType:      home.PropertyType,
		NumberOfBedrooms:  home.NumberOfBedrooms,
		NumberOfBathrooms: home.NumberOfBathrooms,
	}
	if len(home.Images) > 0 {
		resp.Image = home.Images[0].URL
	}
	return resp
}

// NewHomeResponses maps a slice of home rows.
func NewHomeResponses(homes []model.Home) []HomeResponse {
	out := make([]HomeResponse, 0, len(homes))
	for i := range homes {
		out = append(out, NewHomeResponse(&homes[i]))
	}
	return out
}
