package dto

import (
	"time"

	"github.com/eyesoft/studio-backend/internal/models"
)

type SubmitBookingResponse struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Tier            string                 `json:"tier"`
	Category        models.BookingCategory `json:"category"`
	SportDetails    *string                `json:"sport_details,omitempty"`
	PortraitDetails *string                `json:"portrait_details,omitempty"`
	ExtraInfo       *string                `json:"extra_info,omitempty"`
	Status          string                 `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
}

type PortfolioImageResponse struct {
	Src      string               `json:"src"`
	Alt      string               `json:"alt"`
	Category models.ImageCategory `json:"category"`
	Order    *int                 `json:"order,omitempty"`
}

type SeedResponse struct {
	InsertedCount int `json:"inserted_count"`
	UpdatedCount  int `json:"updated_count"`
	TotalCount    int `json:"total_count"`
}

type LikeCountResponse struct {
	ImageID string `json:"image_id"`
	Likes   int64  `json:"likes"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Tier:            b.Tier,
		Category:        b.Category,
		SportDetails:    b.SportDetails,
		PortraitDetails: b.PortraitDetails,
		ExtraInfo:       b.ExtraInfo,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func ToPortfolioImageResponse(img *models.PortfolioImage) PortfolioImageResponse {
	return PortfolioImageResponse{
		Src:      img.Src,
		Alt:      img.Alt,
		Category: img.Category,
		Order:    img.Order,
	}
}
