package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/eyesoft/studio-backend/internal/repository"
	"gorm.io/gorm"
)

type LikeService interface {
	HasLiked(ctx context.Context, imageID, deviceID string) (bool, error)
	GetLikes(ctx context.Context, imageID string) (int64, error)
	Like(ctx context.Context, imageID, deviceID string) error
}

type likeService struct {
	repo repository.LikeRepository
}

func NewLikeService(repo repository.LikeRepository) LikeService {
	return &likeService{repo: repo}
}

func (s *likeService) HasLiked(ctx context.Context, imageID, deviceID string) (bool, error) {
	return s.repo.Exists(ctx, imageID, deviceID)
}

// GetLikes recounts from the store on every call; counts are small and a
// cache here would only complicate the invariant.
func (s *likeService) GetLikes(ctx context.Context, imageID string) (int64, error) {
	return s.repo.CountByImage(ctx, imageID)
}

// Like records at most one like per (image, device). The existence check and
// insert are not one atomic step, so two concurrent calls can both pass the
// check; the unique index on (image_id, device_id) breaks that tie and the
// loser's duplicate-key error is absorbed as already-liked.
func (s *likeService) Like(ctx context.Context, imageID, deviceID string) error {
	liked, err := s.repo.Exists(ctx, imageID, deviceID)
	if err != nil {
		return fmt.Errorf("check like: %w", err)
	}
	if liked {
		return nil
	}

	like := &models.Like{ImageID: imageID, DeviceID: deviceID}
	if err := s.repo.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create like: %w", err)
	}
	return nil
}
