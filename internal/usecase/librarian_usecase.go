package usecase

import (
	"context"

	"library/internal/domain/entity"
)

// BulkResult summarizes a bulk registration run
type BulkResult struct {
	Requested int    `json:"requested"`
	Created   int    `json:"created"`
	Failed    int    `json:"failed"`
	Message   string `json:"message"`
}

// LibrarianUsecase defines the AI-assisted cataloguing use cases
type LibrarianUsecase interface {
	// EnrichBook fills in author, publisher, publishedDate, description and category from the book's title
	EnrichBook(ctx context.Context, bookID string) (*entity.Book, error)

	// BulkRegister creates the books suggested for a free-text request
	BulkRegister(ctx context.Context, request string) (*BulkResult, error)
}
