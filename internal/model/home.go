package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType represents the kind of property a home listing is.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCondo       PropertyType = "CONDO"
)

// Valid reports whether t is a known property type.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeResidential, PropertyTypeCondo:
		return true
	}
	return false
}

// Home represents a property listing owned by a realtor.
type Home struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	Address           string          `json:"address" gorm:"size:255;not null"`
	City              string          `json:"city" gorm:"size:255;not null;index"`
	Price             decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	PropertyType      PropertyType    `json:"property_type" gorm:"type:varchar(20);not null;index"`
	NumberOfBedrooms  int             `json:"number_of_bedrooms" gorm:"not null"`
	NumberOfBathrooms int             `json:"number_of_bathrooms" gorm:"not null"`
	LandSize          float64         `json:"land_size" gorm:"not null"`
	ListedDate        time.Time       `json:"listed_date" gorm:"autoCreateTime"`
	RealtorID         uint            `json:"realtor_id" gorm:"not null;index"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Relations
	Realtor  User      `json:"-" gorm:"foreignKey:RealtorID"`
	Images   []Image   `json:"images,omitempty" gorm:"foreignKey:HomeID"`
	Messages []Message `json:"-" gorm:"foreignKey:HomeID"`
}
