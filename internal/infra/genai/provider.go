package genai

import (
	"context"
	"log/slog"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/service"

	"go.uber.org/fx"
)

// unavailableService answers every call with ErrCompletionUnavailable
type unavailableService struct{}

func (unavailableService) LookupBook(context.Context, string) (*entity.BookDetails, error) {
	return nil, service.ErrCompletionUnavailable
}

func (unavailableService) SuggestBooks(context.Context, string) ([]*entity.BookDetails, error) {
	return nil, service.ErrCompletionUnavailable
}

// ProviderParams holds dependencies for the completion service, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Provide builds the Gemini service, or a stub when no API key is configured
// so that the rest of the site keeps working without the AI librarian.
func Provide(params ProviderParams) (service.CompletionService, error) {
	cfg := params.Config.GenAI
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("GenAI API key not configured, AI librarian disabled")

		return unavailableService{}, nil
	}

	return NewCompletionService(params.Ctx, cfg, params.Logger)
}
