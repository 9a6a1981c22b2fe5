package usecase

import (
	"context"

	"library/internal/domain/entity"
)

// BookView is a book as shown on its detail page
type BookView struct {
	*entity.Book
	IsReserved bool `json:"isReserved"`
}

// ReviewInput is a reader's review submission
type ReviewInput struct {
	User    string `json:"user" validate:"required"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// CatalogUsecase defines the book catalog use cases
type CatalogUsecase interface {
	// ListBooks returns the catalog filtered by term; an empty term returns every book
	ListBooks(ctx context.Context, term string) ([]*entity.Book, error)

	GetBook(ctx context.Context, id string) (*BookView, error)

	// CreateBook adds a placeholder book for the librarian to fill in
	CreateBook(ctx context.Context) (*entity.Book, error)

	PatchBook(ctx context.Context, id string, fields entity.Fields) (*entity.Book, error)

	// DeleteBook removes a book; confirmed must be true
	DeleteBook(ctx context.Context, id string, confirmed bool) error

	// AddReview appends a review to the book's embedded list
	AddReview(ctx context.Context, bookID string, input *ReviewInput) (*entity.Review, error)
}
