package models

import "time"

type BookingCategory string

const (
	CategoryAthletics BookingCategory = "Athletics"
	CategoryPortraits BookingCategory = "Portraits"
)

// ValidBookingCategory reports whether c is one of the two shoot types.
func ValidBookingCategory(c BookingCategory) bool {
	return c == CategoryAthletics || c == CategoryPortraits
}

const StatusPending = "pending"

// Booking is a client's request for a photography session. Status is written
// as "pending" on creation and is reserved for an administrative workflow that
// lives outside this service; no handler here transitions it.
type Booking struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string          `gorm:"not null" json:"name"`
	Email           string          `gorm:"not null;index" json:"email"`
	Tier            string          `gorm:"not null" json:"tier"`
	Category        BookingCategory `gorm:"type:varchar(20);not null" json:"category"`
	SportDetails    *string         `json:"sport_details,omitempty"`
	PortraitDetails *string         `json:"portrait_details,omitempty"`
	ExtraInfo       *string         `json:"extra_info,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
