package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/eyesoft/studio-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidImageCategory = errors.New("category must be athletics or portraits")

// imagesPerCategory is the size of the shipped sample galleries.
const imagesPerCategory = 20

type SeedSummary struct {
	Inserted int
	Updated  int
	Total    int
}

type PortfolioService interface {
	ListByCategory(ctx context.Context, category models.ImageCategory) ([]models.PortfolioImage, error)
	Seed(ctx context.Context) (SeedSummary, error)
}

type portfolioService struct {
	repo repository.PortfolioRepository
}

func NewPortfolioService(repo repository.PortfolioRepository) PortfolioService {
	return &portfolioService{repo: repo}
}

// ListByCategory fetches one category and stable-sorts by display order,
// treating a missing order as 0. Ties keep insertion order.
func (s *portfolioService) ListByCategory(ctx context.Context, category models.ImageCategory) ([]models.PortfolioImage, error) {
	if !models.ValidImageCategory(category) {
		return nil, ErrInvalidImageCategory
	}

	images, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(images, func(i, j int) bool {
		return orderOf(images[i]) < orderOf(images[j])
	})
	return images, nil
}

func orderOf(img models.PortfolioImage) int {
	if img.Order == nil {
		return 0
	}
	return *img.Order
}

// Seed upserts the fixed sample catalog: missing entries are inserted, and
// existing entries get their display order patched when it drifted. Safe to
// run any number of times.
func (s *portfolioService) Seed(ctx context.Context) (SeedSummary, error) {
	catalog := append(seedCatalog(models.ImageCategoryAthletics), seedCatalog(models.ImageCategoryPortraits)...)
	summary := SeedSummary{Total: len(catalog)}

	for _, want := range catalog {
		existing, err := s.repo.FindBySrc(ctx, want.Src)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return summary, fmt.Errorf("lookup %s: %w", want.Src, err)
			}
			img := want
			if err := s.repo.Create(ctx, &img); err != nil {
				return summary, fmt.Errorf("insert %s: %w", want.Src, err)
			}
			summary.Inserted++
			continue
		}

		if existing.Order == nil || *existing.Order != *want.Order {
			if err := s.repo.UpdateOrder(ctx, existing.ID, want.Order); err != nil {
				return summary, fmt.Errorf("update order %s: %w", want.Src, err)
			}
			summary.Updated++
		}
	}

	return summary, nil
}

// seedCatalog generates the expected descriptors for one gallery:
// /portfolio/<category>/sample-N.jpg with order N, N in 1..imagesPerCategory.
func seedCatalog(category models.ImageCategory) []models.PortfolioImage {
	name := strings.ToUpper(string(category)[:1]) + string(category)[1:]
	images := make([]models.PortfolioImage, 0, imagesPerCategory)
	for i := 1; i <= imagesPerCategory; i++ {
		order := i
		images = append(images, models.PortfolioImage{
			Src:      fmt.Sprintf("/portfolio/%s/sample-%d.jpg", category, i),
			Alt:      fmt.Sprintf("%s Sample %d", name, i),
			Category: category,
			Order:    &order,
		})
	}
	return images
}
