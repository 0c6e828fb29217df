package repository

import (
	"context"
	"errors"

	"github.com/eyesoft/studio-backend/internal/models"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Exists(ctx context.Context, imageID, deviceID string) (bool, error)
	CountByImage(ctx context.Context, imageID string) (int64, error)
	Create(ctx context.Context, like *models.Like) error
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, imageID, deviceID string) (bool, error) {
	var like models.Like
	err := r.db.WithContext(ctx).
		Where("image_id = ? AND device_id = ?", imageID, deviceID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *likeRepository) CountByImage(ctx context.Context, imageID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("image_id = ?", imageID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}
