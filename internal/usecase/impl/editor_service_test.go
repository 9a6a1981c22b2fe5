package impl

import (
	"context"
	"testing"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	mockRepo "library/internal/mocks/repository"
	mockSvc "library/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEditorService(t *testing.T) (*editorService, *mockRepo.MockRecordRepository, *mockSvc.MockEventPublisher) {
	records := mockRepo.NewMockRecordRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewEditorService(EditorServiceParams{
		Records:   records,
		Publisher: publisher,
		Logger:    newTestLogger(),
	}).(*editorService)

	return svc, records, publisher
}

func TestEditorService_Dispatch_CoalescesPerRecord(t *testing.T) {
	svc, records, publisher := createTestEditorService(t)
	ctx := context.Background()

	var patched []string
	records.EXPECT().
		Patch(ctx, entity.CollectionBooks, "b1", entity.Fields{"title": "B", "author": "X"}).
		Run(func(_ context.Context, _ entity.Collection, id string, _ entity.Fields) { patched = append(patched, id) }).
		Return(nil).Once()
	records.EXPECT().
		Patch(ctx, entity.CollectionBooks, "b2", entity.Fields{"isNew": true}).
		Run(func(_ context.Context, _ entity.Collection, id string, _ entity.Fields) { patched = append(patched, id) }).
		Return(nil).Once()

	var events []*service.ChangeEvent
	publisher.EXPECT().PublishChange(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.ChangeEvent) { events = append(events, event) }).
		Return(nil).Times(2)

	err := svc.Dispatch(ctx,
		entity.FieldChanged(entity.CollectionBooks, "b1", "title", "A"),
		entity.FieldChanged(entity.CollectionBooks, "b2", "isNew", true),
		entity.FieldChanged(entity.CollectionBooks, "b1", "title", "B"),
		entity.FieldChanged(entity.CollectionBooks, "b1", "author", "X"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"b1", "b2"}, patched)
	require.Len(t, events, 2)
	assert.Equal(t, "b1", events[0].RecordID)
	assert.Equal(t, entity.ChangePatched, events[0].Op)
	assert.Equal(t, []string{"title", "author"}, events[0].Fields)
	assert.Equal(t, []string{"isNew"}, events[1].Fields)
}

func TestEditorService_Dispatch_InvalidCommandWritesNothing(t *testing.T) {
	tests := []struct {
		name string
		cmd  entity.Command
	}{
		{"reviews are append-only", entity.FieldChanged(entity.CollectionBooks, "b1", "reviews", []any{})},
		{"id is immutable", entity.FieldChanged(entity.CollectionBooks, "b1", "id", "b2")},
		{"unknown field", entity.FieldChanged(entity.CollectionNews, "n1", "author", "x")},
		{"wrong type", entity.FieldChanged(entity.CollectionBooks, "b1", "isNew", "yes")},
		{"invalid status", entity.FieldChanged(entity.CollectionReservations, "r1", "status", "LOST")},
		{"invalid notice category", entity.FieldChanged(entity.CollectionNotices, "c1", "category", "URGENT")},
		{"unknown collection", entity.FieldChanged(entity.Collection("users"), "u1", "name", "x")},
		{"missing record id", entity.FieldChanged(entity.CollectionBooks, "", "title", "x")},
		{"unsupported kind", entity.Command{Kind: "Deleted", Collection: entity.CollectionBooks, RecordID: "b1", Field: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any store or publisher call fails the test
			svc, _, _ := createTestEditorService(t)

			err := svc.Dispatch(context.Background(),
				entity.FieldChanged(entity.CollectionBooks, "b1", "title", "valid"),
				tt.cmd,
			)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEditorService_Dispatch_MissingRecord(t *testing.T) {
	svc, records, _ := createTestEditorService(t)
	ctx := context.Background()

	records.EXPECT().Patch(ctx, entity.CollectionNotices, "gone", mock.Anything).
		Return(errors.Wrap(repository.ErrRecordNotFound, "notices/gone")).Once()

	err := svc.Dispatch(ctx, entity.FieldChanged(entity.CollectionNotices, "gone", "title", "x"))

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEditorService_Dispatch_StoreFailureStopsLaterPatches(t *testing.T) {
	svc, records, _ := createTestEditorService(t)
	ctx := context.Background()

	records.EXPECT().Patch(ctx, entity.CollectionBooks, "b1", mock.Anything).
		Return(errors.New("unavailable")).Once()

	err := svc.Dispatch(ctx,
		entity.FieldChanged(entity.CollectionBooks, "b1", "title", "x"),
		entity.FieldChanged(entity.CollectionBooks, "b2", "title", "y"),
	)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestEditorService_Dispatch_PublishFailureIsNotFatal(t *testing.T) {
	svc, records, publisher := createTestEditorService(t)
	ctx := context.Background()

	records.EXPECT().Patch(ctx, entity.CollectionReservations, "r1", entity.Fields{"status": "READY"}).Return(nil).Once()
	publisher.EXPECT().PublishChange(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	err := svc.Dispatch(ctx, entity.FieldChanged(entity.CollectionReservations, "r1", "status", "READY"))

	assert.NoError(t, err)
}

func TestEditorService_Dispatch_NoCommands(t *testing.T) {
	svc, _, _ := createTestEditorService(t)

	assert.NoError(t, svc.Dispatch(context.Background()))
}
