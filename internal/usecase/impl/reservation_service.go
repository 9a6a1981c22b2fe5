package impl

import (
	"context"
	"log/slog"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reservationService struct {
	records  repository.RecordRepository
	editor   usecase.EditorUsecase
	hasher   service.PassphraseHasher
	qrcode   service.QRCodeService
	notifier *changeNotifier
	now      clock
	logger   *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	Records   repository.RecordRepository
	Editor    usecase.EditorUsecase
	Hasher    service.PassphraseHasher
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	return &reservationService{
		records:  params.Records,
		editor:   params.Editor,
		hasher:   params.Hasher,
		qrcode:   params.QRCode,
		notifier: &changeNotifier{publisher: params.Publisher, logger: params.Logger},
		now:      newClock(params.Config),
		logger:   params.Logger,
	}
}

func (s *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Reserve records a pickup request. The passphrase is kept only as a hash.
func (s *reservationService) Reserve(ctx context.Context, bookID string, input *usecase.ReservationInput) (*entity.Reservation, error) {
	if input == nil || input.UserName == "" || input.Passphrase == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "user name and passphrase are required")
	}

	rec, err := s.records.Get(ctx, entity.CollectionBooks, bookID)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrBookNotFound, "get book "+bookID)
	}
	book, err := entity.BookFromRecord(rec)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	hash, err := s.hasher.Hash(input.Passphrase)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	fields := entity.NewReservationFields(book, input.UserName, hash, localeTimestamp(s.now()))
	id, err := s.records.Create(ctx, entity.CollectionReservations, fields)
	if err != nil {
		s.log(ctx).Error("Failed to create reservation", slog.String("book_id", bookID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrReservationFailed, err.Error())
	}

	s.notifier.notify(ctx, entity.CollectionReservations, id, entity.ChangeCreated, fields.Keys())
	s.log(ctx).Info("Reservation created", slog.String("reservation_id", id), slog.String("book_id", bookID))

	return entity.ReservationFromRecord(&entity.Record{ID: id, Fields: fields})
}

func (s *reservationService) ListReservations(ctx context.Context) ([]*entity.Reservation, error) {
	records, err := s.records.List(ctx, entity.CollectionReservations)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "list reservations")
	}

	reservations := make([]*entity.Reservation, 0, len(records))
	for _, rec := range records {
		reservation, err := entity.ReservationFromRecord(rec)
		if err != nil {
			s.log(ctx).Warn("Skipping malformed reservation record", slog.String("reservation_id", rec.ID), slog.Any("error", err))

			continue
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (s *reservationService) get(ctx context.Context, id string) (*entity.Reservation, error) {
	rec, err := s.records.Get(ctx, entity.CollectionReservations, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "get reservation "+id)
	}

	reservation, err := entity.ReservationFromRecord(rec)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return reservation, nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, id string, status entity.ReservationStatus) (*entity.Reservation, error) {
	cmd := entity.FieldChanged(entity.CollectionReservations, id, "status", string(status))
	if err := s.editor.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}

	return s.get(ctx, id)
}

func (s *reservationService) VerifyPassphrase(ctx context.Context, id, passphrase string) (bool, error) {
	reservation, err := s.get(ctx, id)
	if err != nil {
		return false, err
	}

	if reservation.Passphrase == "" || passphrase == "" {
		return false, nil
	}

	return s.hasher.Check(passphrase, reservation.Passphrase), nil
}

func (s *reservationService) PickupQRCode(ctx context.Context, id string) ([]byte, error) {
	reservation, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GeneratePickupQR(reservation.ID, reservation.BookID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, entity.CollectionReservations, id); err != nil {
		return storeError(err, domainerrors.ErrNotFound, "delete reservation "+id)
	}

	s.notifier.notify(ctx, entity.CollectionReservations, id, entity.ChangeDeleted, nil)

	return nil
}
