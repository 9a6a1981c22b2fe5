package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FeatureHandler serves the single monthly feature record
type FeatureHandler struct {
	bulletinUC usecase.BulletinUsecase
	logger     *slog.Logger
}

func NewFeatureHandler(params BulletinHandlerParams) *FeatureHandler {
	return &FeatureHandler{
		bulletinUC: params.BulletinUC,
		logger:     params.Logger,
	}
}

func (h *FeatureHandler) GetFeature(c echo.Context) error {
	feature, err := h.bulletinUC.GetFeature(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feature, "")
}

func (h *FeatureHandler) PatchFeature(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feature fields")
	}

	feature, err := h.bulletinUC.PatchFeature(c.Request().Context(), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feature, "Feature updated")
}

func (h *FeatureHandler) InsertMarkup(c echo.Context) error {
	return insertMarkup(c, h.bulletinUC, entity.CollectionFeatures, entity.FeatureID)
}
