package handler

import (
	"errors"
	"net/http"

	"github.com/eyesoft/studio-backend/internal/dto"
	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/eyesoft/studio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// RegisterRoutes mounts the booking surface. rateLimit guards submissions
// only; the read paths stay unthrottled.
func (h *BookingHandler) RegisterRoutes(e *echo.Echo, rateLimit echo.MiddlewareFunc) {
	bookings := e.Group("/api/v1/bookings")
	bookings.POST("", h.SubmitBooking, rateLimit)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
}

func (h *BookingHandler) SubmitBooking(c echo.Context) error {
	var req dto.SubmitBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking := &models.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Tier:            req.Tier,
		Category:        req.Category,
		SportDetails:    req.SportDetails,
		PortraitDetails: req.PortraitDetails,
		ExtraInfo:       req.ExtraInfo,
	}

	id, err := h.svc.SubmitBooking(c.Request().Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCategory):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.SubmitBookingResponse{ID: id})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), c.QueryParam("status"), c.QueryParam("email"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}
