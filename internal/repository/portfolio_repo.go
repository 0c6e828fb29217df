package repository

import (
	"context"

	"github.com/eyesoft/studio-backend/internal/models"
	"gorm.io/gorm"
)

type PortfolioRepository interface {
	FindByCategory(ctx context.Context, category models.ImageCategory) ([]models.PortfolioImage, error)
	FindBySrc(ctx context.Context, src string) (*models.PortfolioImage, error)
	Create(ctx context.Context, img *models.PortfolioImage) error
	UpdateOrder(ctx context.Context, id uint, order *int) error
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

// FindByCategory returns rows in insertion order (id ASC); display ordering
// is applied by the service so a nil display_order can be treated as 0.
func (r *portfolioRepository) FindByCategory(ctx context.Context, category models.ImageCategory) ([]models.PortfolioImage, error) {
	var images []models.PortfolioImage
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *portfolioRepository) FindBySrc(ctx context.Context, src string) (*models.PortfolioImage, error) {
	var img models.PortfolioImage
	if err := r.db.WithContext(ctx).Where("src = ?", src).First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *portfolioRepository) Create(ctx context.Context, img *models.PortfolioImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *portfolioRepository) UpdateOrder(ctx context.Context, id uint, order *int) error {
	return r.db.WithContext(ctx).
		Model(&models.PortfolioImage{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}
