package usecase

import (
	"context"

	"library/internal/domain/entity"
)

// EditorUsecase is the single write path for field edits made from the admin screens
type EditorUsecase interface {
	// Dispatch validates every command, then coalesces them into one patch per record.
	// Nothing is written when any command is invalid.
	Dispatch(ctx context.Context, cmds ...entity.Command) error
}
