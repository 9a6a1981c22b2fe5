package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"

	"github.com/pkg/errors"
)

// clock returns the current time in the library's time zone
type clock func() time.Time

func newClock(cfg *config.Config) clock {
	loc := cfg.Location()

	return func() time.Time {
		return time.Now().In(loc)
	}
}

// localeTimestamp renders t the way Japanese locale date strings read, e.g. 2024/5/3 9:05:07
func localeTimestamp(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// storeError converts a record store failure into an application error
func storeError(err error, notFound *domainerrors.BaseError, details string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return errors.Wrap(notFound, details)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewStoreExecuteError(err, details)
}

func requireConfirmation(confirmed bool) error {
	if !confirmed {
		return errors.WithStack(domainerrors.ErrConfirmationRequired)
	}

	return nil
}

// changeNotifier publishes change events; a failed publish is logged and never fails the caller
type changeNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (n *changeNotifier) notify(ctx context.Context, collection entity.Collection, recordID string, op entity.ChangeOp, fields []string) {
	event := &service.ChangeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Collection: collection,
		RecordID:   recordID,
		Op:         op,
		Fields:     fields,
	}

	if err := n.publisher.PublishChange(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Warn("Failed to publish change event",
			slog.String("collection", collection.String()),
			slog.String("record_id", recordID),
			slog.String("op", string(op)),
			slog.Any("error", err),
		)
	}
}
