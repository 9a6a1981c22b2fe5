package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
)

type NoticeHandler struct {
	bulletinUC usecase.BulletinUsecase
	logger     *slog.Logger
}

func NewNoticeHandler(params BulletinHandlerParams) *NoticeHandler {
	return &NoticeHandler{
		bulletinUC: params.BulletinUC,
		logger:     params.Logger,
	}
}

func (h *NoticeHandler) ListNotices(c echo.Context) error {
	notices, err := h.bulletinUC.ListNotices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notices, "")
}

func (h *NoticeHandler) GetNotice(c echo.Context) error {
	notice, err := h.bulletinUC.GetNotice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notice, "")
}

func (h *NoticeHandler) CreateNotice(c echo.Context) error {
	notice, err := h.bulletinUC.CreateNotice(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notice, "Notice created")
}

func (h *NoticeHandler) PatchNotice(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notice fields")
	}

	notice, err := h.bulletinUC.PatchNotice(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notice, "Notice updated")
}

func (h *NoticeHandler) DeleteNotice(c echo.Context) error {
	if err := h.bulletinUC.DeleteNotice(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NoticeHandler) InsertMarkup(c echo.Context) error {
	return insertMarkup(c, h.bulletinUC, entity.CollectionNotices, c.Param("id"))
}
