package repository

import (
	"context"

	"gorm.io/gorm"

	"realtor/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListByHomeID(ctx context.Context, homeID uint) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create creates a new message row.
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByHomeID returns all messages for a home with their buyers loaded.
func (r *messageRepository) ListByHomeID(ctx context.Context, homeID uint) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).Preload("Buyer").
		Where("home_id = ?", homeID).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
