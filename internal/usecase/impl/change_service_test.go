package impl

import (
	"context"
	"testing"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/service"
	mockRepo "library/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeService_KeepsReservationsOfDeletedBook(t *testing.T) {
	ctx := context.Background()
	svcs := newTestServices(t)

	kept, err := svcs.records.Create(ctx, entity.CollectionBooks, entity.NewBookFields())
	require.NoError(t, err)
	removed, err := svcs.records.Create(ctx, entity.CollectionBooks, entity.NewBookFields())
	require.NoError(t, err)

	var completedID string
	for i, bookID := range []string{kept, removed, removed} {
		id, err := svcs.records.Create(ctx, entity.CollectionReservations, entity.NewReservationFields(
			&entity.Book{ID: bookID, Title: "こころ"}, "山田", "hash", "2024/5/3 9:05:07"))
		require.NoError(t, err)
		if i == 2 {
			completedID = id
		}
	}
	_, err = svcs.reservation.UpdateStatus(ctx, completedID, entity.ReservationCompleted)
	require.NoError(t, err)

	records := mockRepo.NewMockRecordRepository(t)
	records.EXPECT().List(mock.Anything, entity.CollectionReservations).RunAndReturn(svcs.records.List)

	changes := NewChangeService(ChangeServiceParams{Records: records, Logger: newTestLogger()})

	flagged, err := changes.HandleChange(ctx, &service.ChangeEvent{
		Collection: entity.CollectionBooks,
		RecordID:   removed,
		Op:         entity.ChangeDeleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, flagged)

	// the mock fails on any Delete or Patch, and every reservation is still there
	remaining, err := svcs.reservation.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 3)

	statuses := map[string]entity.ReservationStatus{}
	for _, r := range remaining {
		statuses[r.ID] = r.Status
	}
	assert.Equal(t, entity.ReservationCompleted, statuses[completedID])
}

func TestChangeService_IgnoresOtherEvents(t *testing.T) {
	records := mockRepo.NewMockRecordRepository(t)
	changes := NewChangeService(ChangeServiceParams{Records: records, Logger: newTestLogger()})

	tests := []struct {
		name  string
		event *service.ChangeEvent
	}{
		{"patched book", &service.ChangeEvent{Collection: entity.CollectionBooks, RecordID: "b1", Op: entity.ChangePatched}},
		{"deleted reservation", &service.ChangeEvent{Collection: entity.CollectionReservations, RecordID: "r1", Op: entity.ChangeDeleted}},
		{"created news", &service.ChangeEvent{Collection: entity.CollectionNews, RecordID: "n1", Op: entity.ChangeCreated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagged, err := changes.HandleChange(context.Background(), tt.event)

			assert.NoError(t, err)
			assert.Zero(t, flagged)
		})
	}
}

func TestChangeService_RejectsEventWithoutRecord(t *testing.T) {
	changes := NewChangeService(ChangeServiceParams{Records: mockRepo.NewMockRecordRepository(t), Logger: newTestLogger()})

	_, err := changes.HandleChange(context.Background(), &service.ChangeEvent{Collection: entity.CollectionBooks, Op: entity.ChangeDeleted})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestChangeService_StoreFailure(t *testing.T) {
	records := mockRepo.NewMockRecordRepository(t)
	records.EXPECT().List(mock.Anything, entity.CollectionReservations).Return(nil, errors.New("connection reset"))

	changes := NewChangeService(ChangeServiceParams{Records: records, Logger: newTestLogger()})

	_, err := changes.HandleChange(context.Background(), &service.ChangeEvent{
		Collection: entity.CollectionBooks, RecordID: "b1", Op: entity.ChangeDeleted,
	})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}
