package handler

import (
	"net/http"

	"github.com/eyesoft/studio-backend/internal/dto"
	"github.com/eyesoft/studio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	svc service.LikeService
}

func NewLikeHandler(svc service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

func (h *LikeHandler) RegisterRoutes(e *echo.Echo) {
	images := e.Group("/api/v1/images")
	images.GET("/:id/likes", h.GetLikes)
	images.GET("/:id/liked", h.HasLiked)
	images.POST("/:id/likes", h.Like)
}

func (h *LikeHandler) GetLikes(c echo.Context) error {
	imageID := c.Param("id")

	count, err := h.svc.GetLikes(c.Request().Context(), imageID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LikeCountResponse{ImageID: imageID, Likes: count})
}

func (h *LikeHandler) HasLiked(c echo.Context) error {
	deviceID := c.QueryParam("device_id")
	if deviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "device_id is required")
	}

	liked, err := h.svc.HasLiked(c.Request().Context(), c.Param("id"), deviceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.LikedResponse{Liked: liked})
}

func (h *LikeHandler) Like(c echo.Context) error {
	var req dto.LikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.DeviceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "device_id is required")
	}

	if err := h.svc.Like(c.Request().Context(), c.Param("id"), req.DeviceID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
