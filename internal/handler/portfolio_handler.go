package handler

import (
	"errors"
	"net/http"

	"github.com/eyesoft/studio-backend/internal/dto"
	"github.com/eyesoft/studio-backend/internal/models"
	"github.com/eyesoft/studio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PortfolioHandler struct {
	svc service.PortfolioService
}

func NewPortfolioHandler(svc service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// RegisterRoutes mounts the gallery surface. cache fronts the listing; seed
// is a maintenance endpoint, not part of the user-facing request path.
func (h *PortfolioHandler) RegisterRoutes(e *echo.Echo, cache echo.MiddlewareFunc) {
	portfolio := e.Group("/api/v1/portfolio")
	portfolio.GET("", h.ListByCategory, cache)
	portfolio.POST("/seed", h.Seed)
}

func (h *PortfolioHandler) ListByCategory(c echo.Context) error {
	category := models.ImageCategory(c.QueryParam("category"))

	images, err := h.svc.ListByCategory(c.Request().Context(), category)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImageCategory) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PortfolioImageResponse, len(images))
	for i, img := range images {
		resp[i] = dto.ToPortfolioImageResponse(&img)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PortfolioHandler) Seed(c echo.Context) error {
	summary, err := h.svc.Seed(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		InsertedCount: summary.Inserted,
		UpdatedCount:  summary.Updated,
		TotalCount:    summary.Total,
	})
}
