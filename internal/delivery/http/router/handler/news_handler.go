package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BulletinHandlerParams holds dependencies for the news, notice and feature handlers, injected by Fx.
type BulletinHandlerParams struct {
	fx.In

	BulletinUC usecase.BulletinUsecase
	Logger     *slog.Logger
}

// MarkupRequest names the rich-text tool to append to a record's content
type MarkupRequest struct {
	Tool string `json:"tool" validate:"required"`
}

type NewsHandler struct {
	bulletinUC usecase.BulletinUsecase
	logger     *slog.Logger
}

func NewNewsHandler(params BulletinHandlerParams) *NewsHandler {
	return &NewsHandler{
		bulletinUC: params.BulletinUC,
		logger:     params.Logger,
	}
}

func (h *NewsHandler) ListNews(c echo.Context) error {
	items, err := h.bulletinUC.ListNews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

func (h *NewsHandler) GetNews(c echo.Context) error {
	item, err := h.bulletinUC.GetNews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

func (h *NewsHandler) CreateNews(c echo.Context) error {
	item, err := h.bulletinUC.CreateNews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Newsletter created")
}

func (h *NewsHandler) PatchNews(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid newsletter fields")
	}

	item, err := h.bulletinUC.PatchNews(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Newsletter updated")
}

func (h *NewsHandler) DeleteNews(c echo.Context) error {
	if err := h.bulletinUC.DeleteNews(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NewsHandler) InsertMarkup(c echo.Context) error {
	return insertMarkup(c, h.bulletinUC, entity.CollectionNews, c.Param("id"))
}

// UploadFile handles the multipart "file" upload for pdfUrl or previewImageUrl
func (h *NewsHandler) UploadFile(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file is required")
	}

	file, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file cannot be read")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "file cannot be read")
	}

	item, err := h.bulletinUC.AttachFile(c.Request().Context(), c.Param("id"), c.Param("field"), header.Filename, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "File uploaded")
}

// DownloadFile serves a stored attachment with its download name
func (h *NewsHandler) DownloadFile(c echo.Context) error {
	attachment, err := h.bulletinUC.Attachment(c.Request().Context(), c.Param("id"), c.Param("field"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": attachment.FileName}))

	return c.Blob(http.StatusOK, attachment.ContentType, attachment.Data)
}

func insertMarkup(c echo.Context, bulletinUC usecase.BulletinUsecase, collection entity.Collection, id string) error {
	var req MarkupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid markup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	content, err := bulletinUC.InsertMarkup(c.Request().Context(), collection, id, req.Tool)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"content": content}, "")
}
