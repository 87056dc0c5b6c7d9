package repository

import (
	"context"

	"gorm.io/gorm"

	"quizroom/internal/model"
)

// GuestRepository records guest identities minted for unauthenticated joins.
type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) error
}

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository builds a GORM-backed repository.
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}
