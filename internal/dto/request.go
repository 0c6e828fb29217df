package dto

import "github.com/eyesoft/studio-backend/internal/models"

type SubmitBookingRequest struct {
	Name            string                 `json:"name" validate:"required"`
	Email           string                 `json:"email" validate:"required"`
	Tier            string                 `json:"tier" validate:"required"`
	Category        models.BookingCategory `json:"category" validate:"required"`
	SportDetails    *string                `json:"sport_details,omitempty"`
	PortraitDetails *string                `json:"portrait_details,omitempty"`
	ExtraInfo       *string                `json:"extra_info,omitempty"`
}

type LikeRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}
