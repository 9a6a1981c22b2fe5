package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LibrarianHandlerParams holds dependencies for LibrarianHandler, injected by Fx.
type LibrarianHandlerParams struct {
	fx.In

	LibrarianUC usecase.LibrarianUsecase
	Logger      *slog.Logger
}

// LibrarianHandler exposes the AI-assisted cataloguing tools
type LibrarianHandler struct {
	librarianUC usecase.LibrarianUsecase
	logger      *slog.Logger
}

func NewLibrarianHandler(params LibrarianHandlerParams) *LibrarianHandler {
	return &LibrarianHandler{
		librarianUC: params.LibrarianUC,
		logger:      params.Logger,
	}
}

// BulkRequest is the librarian's free-text request, e.g. "夏目漱石の代表作を5冊"
type BulkRequest struct {
	Request string `json:"request" validate:"required"`
}

func (h *LibrarianHandler) EnrichBook(c echo.Context) error {
	book, err := h.librarianUC.EnrichBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book, "AIで書籍情報を補完しました")
}

func (h *LibrarianHandler) BulkRegister(c echo.Context) error {
	var req BulkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.librarianUC.BulkRegister(c.Request().Context(), req.Request)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, result.Message)
}
