package repository

import (
	"context"

	"gorm.io/gorm"

	"quizroom/internal/model"
)

// RoomRepository defines room persistence operations. A room is a document:
// reads and writes always cover the whole record, including the serialized
// member roster and question list.
//
// FindByCode may serve a cached copy and is for read-only views.
// FindByCodeForUpdate must return the committed row; every read that feeds a
// Save has to use it, or a stale copy gets written back.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByCode(ctx context.Context, code string) (*model.Room, error)
	FindByCodeForUpdate(ctx context.Context, code string) (*model.Room, error)
	Save(ctx context.Context, room *model.Room) error
	DeleteByCode(ctx context.Context, code string) error
}

type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository builds a GORM-backed repository.
func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) FindByCode(ctx context.Context, code string) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByCodeForUpdate(ctx context.Context, code string) (*model.Room, error) {
	return r.FindByCode(ctx, code)
}

func (r *roomRepository) Save(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *roomRepository) DeleteByCode(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Room{}).Error
}
