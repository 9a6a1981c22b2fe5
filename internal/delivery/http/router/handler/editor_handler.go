package handler

import (
	"log/slog"
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EditorHandlerParams holds dependencies for EditorHandler, injected by Fx.
type EditorHandlerParams struct {
	fx.In

	EditorUC usecase.EditorUsecase
	Logger   *slog.Logger
}

// EditorHandler accepts raw command batches from the admin editor
type EditorHandler struct {
	editorUC usecase.EditorUsecase
	logger   *slog.Logger
}

func NewEditorHandler(params EditorHandlerParams) *EditorHandler {
	return &EditorHandler{
		editorUC: params.EditorUC,
		logger:   params.Logger,
	}
}

// CommandsRequest is a batch of field edits applied together
type CommandsRequest struct {
	Commands []entity.Command `json:"commands" validate:"required,min=1,dive"`
}

func (h *EditorHandler) Dispatch(c echo.Context) error {
	var req CommandsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid command batch")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.editorUC.Dispatch(c.Request().Context(), req.Commands...); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"applied": len(req.Commands)}, "")
}

// MarkupTools lists the rich-text tools per collection
func (h *EditorHandler) MarkupTools(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string][]entity.MarkupTool{
		entity.CollectionNews.String():     entity.MarkupToolsFor(entity.CollectionNews),
		entity.CollectionNotices.String():  entity.MarkupToolsFor(entity.CollectionNotices),
		entity.CollectionFeatures.String(): entity.MarkupToolsFor(entity.CollectionFeatures),
	}, "")
}
