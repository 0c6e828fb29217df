package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/eyesoft/studio-backend/internal/events"
	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/eyesoft/studio-backend/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errors.New("name, email and tier are required")
	ErrInvalidCategory = errors.New("category must be Athletics or Portraits")
	ErrBookingNotFound = errors.New("booking not found")
)

// NotificationPublisher pushes a fire-and-forget message onto the
// notifications exchange. Satisfied by pkg/rabbitmq.Publisher.
type NotificationPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	SubmitBooking(ctx context.Context, booking *models.Booking) (string, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, status, email string) ([]models.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	publisher NotificationPublisher
}

func NewBookingService(repo repository.BookingRepository, publisher NotificationPublisher) BookingService {
	return &bookingService{repo: repo, publisher: publisher}
}

// SubmitBooking persists the request and then schedules the two notification
// emails. The insert happens-before both publishes; a failed publish is
// logged and absorbed so the caller still gets a valid id. Detail fields are
// deliberately not cross-checked against category.
func (s *bookingService) SubmitBooking(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.Name == "" || booking.Email == "" || booking.Tier == "" {
		return "", ErrMissingFields
	}
	if !models.ValidBookingCategory(booking.Category) {
		return "", ErrInvalidCategory
	}

	booking.ID = uuid.NewString()
	booking.Status = models.StatusPending

	if err := s.repo.Create(ctx, booking); err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	if s.publisher != nil {
		confirmation := events.BookingConfirmation{
			BookingID: booking.ID,
			Name:      booking.Name,
			Email:     booking.Email,
			Tier:      booking.Tier,
			Category:  string(booking.Category),
		}
		if err := s.publisher.Publish(events.RKBookingConfirmation, confirmation); err != nil {
			log.Printf("[BookingService] publish confirmation for %s: %v", booking.ID, err)
		}

		alert := events.BookingAdminAlert{
			BookingID:       booking.ID,
			Name:            booking.Name,
			Email:           booking.Email,
			Tier:            booking.Tier,
			Category:        string(booking.Category),
			SportDetails:    booking.SportDetails,
			PortraitDetails: booking.PortraitDetails,
			ExtraInfo:       booking.ExtraInfo,
		}
		if err := s.publisher.Publish(events.RKBookingAdminAlert, alert); err != nil {
			log.Printf("[BookingService] publish admin alert for %s: %v", booking.ID, err)
		}
	}

	return booking.ID, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *bookingService) ListBookings(ctx context.Context, status, email string) ([]models.Booking, error) {
	return s.repo.FindAll(ctx, status, email)
}
