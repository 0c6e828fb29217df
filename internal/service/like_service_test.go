package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeLikeRepo mimics the likes table with its unique (image_id, device_id)
// index: a second insert for the same pair fails with ErrDuplicatedKey.
type fakeLikeRepo struct {
	rows     map[string]bool
	existsFn func(ctx context.Context, imageID, deviceID string) (bool, error)
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{rows: map[string]bool{}}
}

func likeKey(imageID, deviceID string) string { return imageID + "|" + deviceID }

func (f *fakeLikeRepo) Exists(ctx context.Context, imageID, deviceID string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, imageID, deviceID)
	}
	return f.rows[likeKey(imageID, deviceID)], nil
}

func (f *fakeLikeRepo) CountByImage(ctx context.Context, imageID string) (int64, error) {
	var count int64
	for key := range f.rows {
		if len(key) > len(imageID) && key[:len(imageID)+1] == imageID+"|" {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *models.Like) error {
	key := likeKey(like.ImageID, like.DeviceID)
	if f.rows[key] {
		return gorm.ErrDuplicatedKey
	}
	f.rows[key] = true
	return nil
}

func TestLike_FirstLikeRecorded(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	liked, err := svc.HasLiked(ctx, "img-7", "device-A")
	assert.NoError(t, err)
	assert.False(t, liked)

	assert.NoError(t, svc.Like(ctx, "img-7", "device-A"))

	liked, err = svc.HasLiked(ctx, "img-7", "device-A")
	assert.NoError(t, err)
	assert.True(t, liked)
}

func TestLike_SecondLikeSameDeviceIsNoOp(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	assert.NoError(t, svc.Like(ctx, "img-7", "device-A"))
	assert.NoError(t, svc.Like(ctx, "img-7", "device-A"))
	assert.NoError(t, svc.Like(ctx, "img-7", "device-B"))

	count, err := svc.GetLikes(ctx, "img-7")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLike_CountScopedToImage(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(repo)
	ctx := context.Background()

	assert.NoError(t, svc.Like(ctx, "img-1", "device-A"))
	assert.NoError(t, svc.Like(ctx, "img-2", "device-A"))

	count, err := svc.GetLikes(ctx, "img-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// Two racing calls can both pass the existence check; the storage unique
// index rejects the loser and that rejection must read as already-liked.
func TestLike_DuplicateKeyFromRaceAbsorbed(t *testing.T) {
	repo := newFakeLikeRepo()
	repo.rows[likeKey("img-7", "device-A")] = true
	repo.existsFn = func(ctx context.Context, imageID, deviceID string) (bool, error) {
		return false, nil // stale read, as in the race
	}
	svc := NewLikeService(repo)

	err := svc.Like(context.Background(), "img-7", "device-A")

	assert.NoError(t, err)
}

func TestLike_StoreErrorSurfaces(t *testing.T) {
	repo := newFakeLikeRepo()
	repo.existsFn = func(ctx context.Context, imageID, deviceID string) (bool, error) {
		return false, errors.New("connection reset")
	}
	svc := NewLikeService(repo)

	err := svc.Like(context.Background(), "img-7", "device-A")

	assert.Error(t, err)
}
