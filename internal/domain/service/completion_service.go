// Package service defines interfaces for external collaborators and stateless domain logic.
package service

import (
	"context"

	"library/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCompletionParse is returned when the completion service answers with text
// that does not match the requested schema.
var ErrCompletionParse = errors.New("completion response does not match schema")

// ErrCompletionUnavailable is returned when no completion backend is configured.
var ErrCompletionUnavailable = errors.New("completion service is not configured")

// CompletionService asks a generative model for structured catalog data.
type CompletionService interface {
	// LookupBook returns author, publisher, published date, a short description and category for a title.
	LookupBook(ctx context.Context, title string) (*entity.BookDetails, error)

	// SuggestBooks returns complete book entries matching a librarian's free-text request.
	SuggestBooks(ctx context.Context, request string) ([]*entity.BookDetails, error)
}
