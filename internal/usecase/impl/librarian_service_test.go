package impl

import (
	"context"
	"sync"
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

func createTestLibrarianService(t *testing.T, records repository.RecordRepository) (*librarianService, *mockSvc.MockCompletionService) {
	completion := mockSvc.NewMockCompletionService(t)
	publisher := quietPublisher(t)
	logger := newTestLogger()

	editor := NewEditorService(EditorServiceParams{Records: records, Publisher: publisher, Logger: logger})
	svc := NewLibrarianService(LibrarianServiceParams{
		Records:    records,
		Editor:     editor,
		Completion: completion,
		Publisher:  publisher,
		Logger:     logger,
	}).(*librarianService)

	return svc, completion
}

func suggestion(title string) *entity.BookDetails {
	return &entity.BookDetails{
		Title:         title,
		Author:        "夏目漱石",
		Publisher:     "新潮社",
		PublishedDate: "1906",
		Description:   "あらすじ",
		Category:      "小説",
	}
}

func TestLibrarianService_EnrichBook(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	svc, completion := createTestLibrarianService(t, svcs.records)

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)
	_, err = svcs.catalog.PatchBook(ctx, book.ID, entity.Fields{"title": "こころ", "isRecommended": true})
	require.NoError(t, err)

	completion.EXPECT().LookupBook(ctx, "こころ").Return(&entity.BookDetails{
		Author:        "夏目漱石",
		Publisher:     "岩波書店",
		PublishedDate: "1914-09-20",
		Description:   "先生と私の物語",
		Category:      "文学",
	}, nil).Once()

	enriched, err := svc.EnrichBook(ctx, book.ID)
	require.NoError(t, err)

	assert.Equal(t, "こころ", enriched.Title)
	assert.Equal(t, "夏目漱石", enriched.Author)
	assert.Equal(t, "岩波書店", enriched.Publisher)
	assert.Equal(t, "1914-09-20", enriched.PublishedDate)
	assert.Equal(t, "先生と私の物語", enriched.Description)
	assert.Equal(t, "文学", enriched.Category)
	assert.True(t, enriched.IsRecommended)
	assert.False(t, svc.busy.Load())
}

func TestLibrarianService_EnrichBook_TitleRequired(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	svc, _ := createTestLibrarianService(t, svcs.records)

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)
	_, err = svcs.catalog.PatchBook(ctx, book.ID, entity.Fields{"title": "  "})
	require.NoError(t, err)

	_, err = svc.EnrichBook(ctx, book.ID)
	assert.ErrorIs(t, err, domainerrors.ErrTitleRequired)
}

func TestLibrarianService_EnrichBook_LookupFailureLeavesBook(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	svc, completion := createTestLibrarianService(t, svcs.records)

	book, err := svcs.catalog.CreateBook(ctx)
	require.NoError(t, err)

	completion.EXPECT().LookupBook(ctx, "新規タイトル").Return(nil, service.ErrCompletionParse).Once()

	_, err = svc.EnrichBook(ctx, book.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAILookupFailed)

	view, err := svcs.catalog.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "著者名", view.Author)
	assert.False(t, svc.busy.Load())
}

func TestLibrarianService_Unavailable(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	svc, completion := createTestLibrarianService(t, svcs.records)

	completion.EXPECT().SuggestBooks(ctx, "小説").Return(nil, service.ErrCompletionUnavailable).Once()

	_, err := svc.BulkRegister(ctx, "小説")
	assert.ErrorIs(t, err, domainerrors.ErrLibrarianUnavailable)
}

func TestLibrarianService_BulkRegister(t *testing.T) {
	svcs := newTestServices(t)
	ctx := context.Background()
	svc, completion := createTestLibrarianService(t, svcs.records)

	completion.EXPECT().SuggestBooks(ctx, "夏目漱石の代表作").
		Return([]*entity.BookDetails{suggestion("こころ"), suggestion("坊っちゃん"), suggestion("三四郎")}, nil).Once()

	result, err := svc.BulkRegister(ctx, "  夏目漱石の代表作 ")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "3件の蔵書を登録しました。", result.Message)

	books, err := svcs.catalog.ListBooks(ctx, "")
	require.NoError(t, err)
	require.Len(t, books, 3)
	for _, book := range books {
		assert.True(t, book.IsNew)
		assert.False(t, book.IsRecommended)
		assert.Empty(t, book.Reviews)
		assert.Equal(t, "新潮社", book.Publisher)
	}
}

func TestLibrarianService_BulkRegister_IndependentFailures(t *testing.T) {
	records := mockRepo.NewMockRecordRepository(t)
	svc, completion := createTestLibrarianService(t, records)
	ctx := context.Background()

	completion.EXPECT().SuggestBooks(ctx, "request").
		Return([]*entity.BookDetails{suggestion("A"), suggestion("B"), suggestion("C")}, nil).Once()

	var titles []string
	records.EXPECT().Create(ctx, entity.CollectionBooks, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.Collection, fields entity.Fields) (string, error) {
			title := fields["title"].(string)
			titles = append(titles, title)
			if title == "B" {
				return "", errors.New("write rejected")
			}

			return "id-" + title, nil
		}).Times(3)

	result, err := svc.BulkRegister(ctx, "request")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, titles)
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "2件の蔵書を登録しました。", result.Message)
}

func TestLibrarianService_BulkRegister_Errors(t *testing.T) {
	records := mockRepo.NewMockRecordRepository(t)
	svc, completion := createTestLibrarianService(t, records)
	ctx := context.Background()

	_, err := svc.BulkRegister(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	completion.EXPECT().SuggestBooks(ctx, "request").Return(nil, service.ErrCompletionParse).Once()

	_, err = svc.BulkRegister(ctx, "request")
	assert.ErrorIs(t, err, domainerrors.ErrAIBulkFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "エラーが発生しました。", appErr.Message())
}

func TestLibrarianService_BusyRejectsConcurrentCalls(t *testing.T) {
	records := mockRepo.NewMockRecordRepository(t)
	svc, completion := createTestLibrarianService(t, records)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	completion.EXPECT().SuggestBooks(ctx, "first").
		RunAndReturn(func(context.Context, string) ([]*entity.BookDetails, error) {
			close(started)
			<-release

			return nil, nil
		}).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := svc.BulkRegister(ctx, "first")
		if assert.NoError(t, err) {
			assert.Equal(t, 0, result.Created)
		}
	}()

	<-started
	_, err := svc.BulkRegister(ctx, "second")
	assert.ErrorIs(t, err, domainerrors.ErrLibrarianBusy)

	close(release)
	wg.Wait()
	assert.False(t, svc.busy.Load())
}
