package model

import "time"

// Message represents a buyer inquiry about a home, addressed to its realtor.
// Messages are write-once: created by the inquire flow and read-only after.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"message" gorm:"type:text;not null"`
	HomeID    uint      `json:"home_id" gorm:"not null;index"`
	BuyerID   uint      `json:"buyer_id" gorm:"not null;index"`
	RealtorID uint      `json:"realtor_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Home    Home `json:"-" gorm:"foreignKey:HomeID"`
	Buyer   User `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Realtor User `json:"-" gorm:"foreignKey:RealtorID"`
}
