package impl

import (
	"context"
	"log/slog"
	"strings"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	records  repository.RecordRepository
	editor   usecase.EditorUsecase
	notifier *changeNotifier
	now      clock
	logger   *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Records   repository.RecordRepository
	Editor    usecase.EditorUsecase
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		records:  params.Records,
		editor:   params.Editor,
		notifier: &changeNotifier{publisher: params.Publisher, logger: params.Logger},
		now:      newClock(params.Config),
		logger:   params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FilterBooks keeps the books whose title, author or category contains term,
// ignoring case. An empty term returns books unchanged. Order is preserved.
func FilterBooks(term string, books []*entity.Book) []*entity.Book {
	if term == "" {
		return books
	}

	lowerTerm := strings.ToLower(term)
	filtered := make([]*entity.Book, 0, len(books))
	for _, book := range books {
		if book.Matches(lowerTerm) {
			filtered = append(filtered, book)
		}
	}

	return filtered
}

func (s *catalogService) ListBooks(ctx context.Context, term string) ([]*entity.Book, error) {
	records, err := s.records.List(ctx, entity.CollectionBooks)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "list books")
	}

	books := make([]*entity.Book, 0, len(records))
	for _, rec := range records {
		book, err := entity.BookFromRecord(rec)
		if err != nil {
			s.log(ctx).Warn("Skipping malformed book record", slog.String("book_id", rec.ID), slog.Any("error", err))

			continue
		}
		books = append(books, book)
	}

	return FilterBooks(term, books), nil
}

func (s *catalogService) getBook(ctx context.Context, id string) (*entity.Book, error) {
	rec, err := s.records.Get(ctx, entity.CollectionBooks, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBookNotFound, "get book "+id)
	}

	book, err := entity.BookFromRecord(rec)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return book, nil
}

func (s *catalogService) GetBook(ctx context.Context, id string) (*usecase.BookView, error) {
	book, err := s.getBook(ctx, id)
	if err != nil {
		return nil, err
	}

	reserved, err := s.isReserved(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.BookView{Book: book, IsReserved: reserved}, nil
}

// isReserved reports whether any reservation for the book has not been completed
func (s *catalogService) isReserved(ctx context.Context, bookID string) (bool, error) {
	records, err := s.records.List(ctx, entity.CollectionReservations)
	if err != nil {
		return false, storeError(err, domainerrors.ErrNotFound, "list reservations")
	}

	for _, rec := range records {
		reservation, err := entity.ReservationFromRecord(rec)
		if err != nil {
			continue
		}
		if reservation.BookID == bookID && reservation.Active() {
			return true, nil
		}
	}

	return false, nil
}

func (s *catalogService) CreateBook(ctx context.Context) (*entity.Book, error) {
	fields := entity.NewBookFields()

	id, err := s.records.Create(ctx, entity.CollectionBooks, fields)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "create book")
	}

	s.notifier.notify(ctx, entity.CollectionBooks, id, entity.ChangeCreated, fields.Keys())
	s.log(ctx).Info("Book created", slog.String("book_id", id))

	return entity.BookFromRecord(&entity.Record{ID: id, Fields: fields})
}

func (s *catalogService) PatchBook(ctx context.Context, id string, fields entity.Fields) (*entity.Book, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	if err := s.editor.Dispatch(ctx, entity.FieldChangesFrom(entity.CollectionBooks, id, fields)...); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, id)
		}

		return nil, err
	}

	return s.getBook(ctx, id)
}

func (s *catalogService) DeleteBook(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, entity.CollectionBooks, id); err != nil {
		return storeError(err, domainerrors.ErrBookNotFound, "delete book "+id)
	}

	s.notifier.notify(ctx, entity.CollectionBooks, id, entity.ChangeDeleted, nil)
	s.log(ctx).Info("Book deleted", slog.String("book_id", id))

	return nil
}

func (s *catalogService) AddReview(ctx context.Context, bookID string, input *usecase.ReviewInput) (*entity.Review, error) {
	if input == nil || input.User == "" || input.Comment == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user and comment are required")
	}

	rating := input.Rating
	if rating == 0 {
		rating = entity.DefaultRating
	}

	review := &entity.Review{
		ID:        uuid.NewString(),
		User:      input.User,
		Comment:   input.Comment,
		Rating:    rating,
		Timestamp: localeTimestamp(s.now()),
	}

	value, err := review.ToFields()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	if err := s.records.AppendToArray(ctx, entity.CollectionBooks, bookID, "reviews", map[string]any(value)); err != nil {
		s.log(ctx).Error("Failed to add review", slog.String("book_id", bookID), slog.Any("error", err))
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, bookID)
		}

		return nil, errors.Wrap(domainerrors.ErrReviewFailed, err.Error())
	}

	s.notifier.notify(ctx, entity.CollectionBooks, bookID, entity.ChangePatched, []string{"reviews"})

	return review, nil
}
