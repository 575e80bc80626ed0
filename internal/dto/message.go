package dto

import "realtor/internal/model"

// MessageResponse is the external shape of a newly created inquiry.
type MessageResponse struct {
	ID        uint   `json:"id"`
	Message   string `json:"message"`
	HomeID    uint   `json:"homeId"`
	BuyerID   uint   `json:"buyerId"`
	RealtorID uint   `json:"realtorId"`
}

// NewMessageResponse maps a message row to its external shape.
func NewMessageResponse(msg *model.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID,
		Message:   msg.Body,
		HomeID:    msg.HomeID,
		BuyerID:   msg.BuyerID,
		RealtorID: msg.RealtorID,
	}
}

// HomeMessage pairs an inquiry's text with the buyer who sent it, as
// surfaced to the listing's realtor.
type HomeMessage struct {
	Message string       `json:"message"`
	Buyer   UserResponse `json:"buyer"`
}

// NewHomeMessage maps a message row with its preloaded buyer.
func NewHomeMessage(msg *model.Message) HomeMessage {
	buyer := NewUserResponse(&msg.Buyer)
	buyer.UserType = "" // contact fields only
	return HomeMessage{
		Message: msg.Body,
		Buyer:   buyer,
	}
}
