package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type librarianService struct {
	records    repository.RecordRepository
	editor     usecase.EditorUsecase
	completion service.CompletionService
	notifier   *changeNotifier
	logger     *slog.Logger

	// busy is set while a completion request is in flight; only one runs at a time
	busy atomic.Bool
}

// LibrarianServiceParams holds dependencies for LibrarianService, injected by Fx.
type LibrarianServiceParams struct {
	fx.In

	Records    repository.RecordRepository
	Editor     usecase.EditorUsecase
	Completion service.CompletionService
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

func NewLibrarianService(params LibrarianServiceParams) usecase.LibrarianUsecase {
	return &librarianService{
		records:    params.Records,
		editor:     params.Editor,
		completion: params.Completion,
		notifier:   &changeNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}
}

func (s *librarianService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *librarianService) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return errors.WithStack(domainerrors.ErrLibrarianBusy)
	}

	return nil
}

func (s *librarianService) release() {
	s.busy.Store(false)
}

// completionError maps a completion failure onto the user-facing error for the operation
func completionError(err error, failed *domainerrors.BaseError) error {
	if errors.Is(err, service.ErrCompletionUnavailable) {
		return errors.Wrap(domainerrors.ErrLibrarianUnavailable, err.Error())
	}

	return errors.Wrap(failed, err.Error())
}

func (s *librarianService) EnrichBook(ctx context.Context, bookID string) (*entity.Book, error) {
	rec, err := s.records.Get(ctx, entity.CollectionBooks, bookID)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBookNotFound, "get book "+bookID)
	}
	book, err := entity.BookFromRecord(rec)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	if strings.TrimSpace(book.Title) == "" {
		return nil, errors.WithStack(domainerrors.ErrTitleRequired)
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	details, err := s.completion.LookupBook(ctx, book.Title)
	if err != nil {
		s.log(ctx).Warn("Book lookup failed", slog.String("book_id", bookID), slog.String("title", book.Title), slog.Any("error", err))

		return nil, completionError(err, domainerrors.ErrAILookupFailed)
	}

	if err := s.editor.Dispatch(ctx, entity.FieldChangesFrom(entity.CollectionBooks, bookID, entity.EnrichmentFields(details))...); err != nil {
		return nil, err
	}

	rec, err = s.records.Get(ctx, entity.CollectionBooks, bookID)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBookNotFound, "get book "+bookID)
	}

	return entity.BookFromRecord(rec)
}

// BulkRegister creates every suggested book independently. A failed create is
// counted and skipped; books already created are kept.
func (s *librarianService) BulkRegister(ctx context.Context, request string) (*usecase.BulkResult, error) {
	request = strings.TrimSpace(request)
	if request == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "request is required")
	}

	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	s.log(ctx).Info("AI司書が蔵書データを作成中...", slog.String("request", request))

	suggestions, err := s.completion.SuggestBooks(ctx, request)
	if err != nil {
		s.log(ctx).Warn("Bulk suggestion failed", slog.Any("error", err))

		return nil, completionError(err, domainerrors.ErrAIBulkFailed)
	}

	result := &usecase.BulkResult{Requested: len(suggestions)}
	for _, details := range suggestions {
		fields := entity.GeneratedBookFields(details)

		id, err := s.records.Create(ctx, entity.CollectionBooks, fields)
		if err != nil {
			result.Failed++
			s.log(ctx).Warn("Failed to register suggested book", slog.String("title", details.Title), slog.Any("error", err))

			continue
		}

		result.Created++
		s.notifier.notify(ctx, entity.CollectionBooks, id, entity.ChangeCreated, fields.Keys())
	}

	result.Message = fmt.Sprintf("%d件の蔵書を登録しました。", result.Created)
	s.log(ctx).Info("Bulk registration finished",
		slog.Int("requested", result.Requested),
		slog.Int("created", result.Created),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
