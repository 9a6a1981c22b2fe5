package usecase

import (
	"context"

	"library/internal/domain/service"
)

// ChangeUsecase reacts to committed changes delivered by the event worker
type ChangeUsecase interface {
	// HandleChange runs follow-up checks for one change event and reports how many records need attention.
	// It never writes to the store. Events that need no follow-up are accepted and report zero.
	HandleChange(ctx context.Context, event *service.ChangeEvent) (int, error)
}
