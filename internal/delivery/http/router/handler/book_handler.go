package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// BookHandler serves the catalog pages and the admin book editor
type BookHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListBooks handles GET /books?q=
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.catalogUC.ListBooks(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, books, "")
}

func (h *BookHandler) GetBook(c echo.Context) error {
	book, err := h.catalogUC.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book, "")
}

func (h *BookHandler) CreateBook(c echo.Context) error {
	book, err := h.catalogUC.CreateBook(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, book, "Book created")
}

func (h *BookHandler) PatchBook(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book fields")
	}

	book, err := h.catalogUC.PatchBook(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated")
}

func (h *BookHandler) DeleteBook(c echo.Context) error {
	if err := h.catalogUC.DeleteBook(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddReview handles POST /books/:id/reviews
func (h *BookHandler) AddReview(c echo.Context) error {
	var req usecase.ReviewInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.catalogUC.AddReview(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "口コミを投稿しました")
}
