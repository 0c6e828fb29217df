package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys on the notifications exchange. The booking service publishes
// both right after a booking row is inserted; the email worker consumes them
// independently with no defined relative order.
const (
	RKBookingConfirmation = "booking.confirmation"
	RKBookingAdminAlert   = "booking.admin_alert"
)

// BookingConfirmation carries what the client-facing confirmation email needs.
type BookingConfirmation struct {
	BookingID string `json:"booking_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tier      string `json:"tier"`
	Category  string `json:"category"`
}

// BookingAdminAlert carries the full submission for the studio inbox.
type BookingAdminAlert struct {
	BookingID       string  `json:"booking_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Tier            string  `json:"tier"`
	Category        string  `json:"category"`
	SportDetails    *string `json:"sport_details,omitempty"`
	PortraitDetails *string `json:"portrait_details,omitempty"`
	ExtraInfo       *string `json:"extra_info,omitempty"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
