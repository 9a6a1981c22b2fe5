package impl

import (
	"context"
	"testing"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks() []*entity.Book {
	return []*entity.Book{
		{ID: "1", Title: "Kokoro", Author: "Natsume Soseki", Category: "Fiction"},
		{ID: "2", Title: "ノルウェイの森", Author: "村上春樹", Category: "小説"},
		{ID: "3", Title: "Botchan", Author: "Natsume Soseki", Category: "Fiction"},
		{ID: "4", Title: "The Art of Computer Programming", Author: "Donald Knuth", Category: "Computing"},
	}
}

func TestFilterBooks(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{name: "empty term returns input", term: "", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "author match ignores case", term: "soseki", wantIDs: []string{"1", "3"}},
		{name: "title match", term: "KOKORO", wantIDs: []string{"1"}},
		{name: "category match", term: "comput", wantIDs: []string{"4"}},
		{name: "japanese substring", term: "春樹", wantIDs: []string{"2"}},
		{name: "no match", term: "tolstoy", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBooks(tt.term, books)

			ids := make([]string, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterBooks_Idempotent(t *testing.T) {
	books := sampleBooks()

	for _, term := range []string{"", "soseki", "o", "小説", "zzz"} {
		once := FilterBooks(term, books)
		twice := FilterBooks(term, once)

		assert.Equal(t, once, twice, "term %q", term)
	}
}

func TestFilterBooks_EmptyTermIsUnchanged(t *testing.T) {
	books := sampleBooks()

	got := FilterBooks("", books)

	require.Len(t, got, len(books))
	assert.Same(t, &books[0], &got[0])
}

func TestCatalogService_CreateBookDefaults(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "新規タイトル", book.Title)
	assert.Equal(t, "著者名", book.Author)
	assert.Equal(t, "小説", book.Category)
	assert.True(t, book.IsNew)
	assert.False(t, book.IsRecommended)
	assert.Empty(t, book.CoverURL)
	assert.Empty(t, book.Reviews)
}

func TestCatalogService_PatchKeepsUnnamedFields(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	created, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	updated, err := svcs.catalog.PatchBook(ctx, created.ID, entity.Fields{"title": "こころ", "isRecommended": true})
	require.NoError(t, err)

	assert.Equal(t, "こころ", updated.Title)
	assert.True(t, updated.IsRecommended)
	assert.Equal(t, "著者名", updated.Author)
	assert.Equal(t, "小説", updated.Category)
	assert.True(t, updated.IsNew)

	rec, err := svcs.records.Get(ctx, entity.CollectionBooks, created.ID)
	require.NoError(t, err)
	assert.Contains(t, rec.Fields, "reviews")
	assert.Contains(t, rec.Fields, "coverUrl")
}

func TestCatalogService_PatchBookErrors(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	created, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	_, err = svcs.catalog.PatchBook(ctx, created.ID, entity.Fields{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svcs.catalog.PatchBook(ctx, created.ID, entity.Fields{"reviews": []any{}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svcs.catalog.PatchBook(ctx, "missing", entity.Fields{"title": "x"})
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestCatalogService_DeleteRequiresConfirmation(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	created, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	err = svcs.catalog.DeleteBook(ctx, created.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrConfirmationRequired)

	_, err = svcs.catalog.GetBook(ctx, created.ID)
	require.NoError(t, err, "unconfirmed delete must keep the book")

	require.NoError(t, svcs.catalog.DeleteBook(ctx, created.ID, true))

	_, err = svcs.catalog.GetBook(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)

	err = svcs.catalog.DeleteBook(ctx, created.ID, true)
	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestCatalogService_ListBooksFiltersByTerm(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	first, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)
	second, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	_, err = svcs.catalog.PatchBook(ctx, second.ID, entity.Fields{"title": "Kokoro", "author": "Natsume Soseki"})
	require.NoError(t, err)

	all, err := svcs.catalog.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	found, err := svcs.catalog.ListBooks(ctx, "soseki")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, second.ID, found[0].ID)
}

func TestCatalogService_AddReview(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	review, err := svcs.catalog.AddReview(ctx, book.ID, &usecase.ReviewInput{User: "たろう", Comment: "面白かった"})
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, entity.DefaultRating, review.Rating)
	assert.Equal(t, "2024/5/3 9:05:07", review.Timestamp)

	_, err = svcs.catalog.AddReview(ctx, book.ID, &usecase.ReviewInput{User: "はなこ", Comment: "普通", Rating: 3})
	require.NoError(t, err)

	view, err := svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, view.Reviews, 2)
	assert.Equal(t, "たろう", view.Reviews[0].User)
	assert.Equal(t, 3, view.Reviews[1].Rating)
}

func TestCatalogService_AddReview_EmptyInputWritesNothing(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	inputs := []*usecase.ReviewInput{
		nil,
		{User: "", Comment: "本文"},
		{User: "たろう", Comment: ""},
		{},
	}
	for _, input := range inputs {
		_, err := svcs.catalog.AddReview(ctx, book.ID, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	view, err := svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Reviews)
}

func TestCatalogService_AddReview_MissingBook(t *testing.T) {
	svcs := newTestServices(t)

	_, err := svcs.catalog.AddReview(context.Background(), "missing", &usecase.ReviewInput{User: "a", Comment: "b"})

	assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
}

func TestCatalogService_GetBookReportsReservation(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	view, err := svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, view.IsReserved)

	reservation, err := svcs.reservation.Reserve(ctx, book.ID, &usecase.ReservationInput{UserName: "たろう", Passphrase: "1234"})
	require.NoError(t, err)

	view, err = svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, view.IsReserved)

	_, err = svcs.reservation.UpdateStatus(ctx, reservation.ID, entity.ReservationCompleted)
	require.NoError(t, err)

	view, err = svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.False(t, view.IsReserved)
}
