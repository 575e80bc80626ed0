package model

import "time"

// Image represents a photo attached to a home listing.
// Images are created in bulk alongside their home and removed in bulk
// before the home itself is deleted.
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	HomeID    uint      `json:"home_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Home Home `json:"-" gorm:"foreignKey:HomeID"`
}
