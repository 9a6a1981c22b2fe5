package impl

import (
	"context"
	"log/slog"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type changeService struct {
	records repository.RecordRepository
	logger  *slog.Logger
}

// ChangeServiceParams holds dependencies for ChangeService, injected by Fx.
type ChangeServiceParams struct {
	fx.In

	Records repository.RecordRepository
	Logger  *slog.Logger
}

func NewChangeService(params ChangeServiceParams) usecase.ChangeUsecase {
	return &changeService{
		records: params.Records,
		logger:  params.Logger,
	}
}

func (s *changeService) HandleChange(ctx context.Context, event *service.ChangeEvent) (int, error) {
	if event == nil || event.RecordID == "" {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "change event without record id")
	}

	if event.Collection == entity.CollectionBooks && event.Op == entity.ChangeDeleted {
		return s.flagOrphanedReservations(ctx, event.RecordID)
	}

	return 0, nil
}

// flagOrphanedReservations reports reservations still pointing at a deleted book.
// They stay in the store until the librarian deletes them.
func (s *changeService) flagOrphanedReservations(ctx context.Context, bookID string) (int, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	records, err := s.records.List(ctx, entity.CollectionReservations)
	if err != nil {
		return 0, storeError(err, domainerrors.ErrNotFound, "list reservations")
	}

	orphaned := 0
	for _, rec := range records {
		reservation, err := entity.ReservationFromRecord(rec)
		if err != nil || reservation.BookID != bookID {
			continue
		}

		orphaned++
		logger.Debug("Reservation refers to deleted book",
			slog.String("reservation_id", reservation.ID),
			slog.String("status", string(reservation.Status)),
		)
	}

	if orphaned > 0 {
		logger.Warn("Deleted book still has reservations",
			slog.String("book_id", bookID),
			slog.Int("reservations", orphaned),
		)
	}

	return orphaned, nil
}
