package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/domain/service"
	"library/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fieldPDF     = "pdfUrl"
	fieldPreview = "previewImageUrl"

	defaultPDFName = "newsletter.pdf"
)

// attachmentRule is the accept filter for one attachment field
type attachmentRule struct {
	extensions []string
	mimeTypes  []string
}

var attachmentRules = map[string]attachmentRule{
	fieldPDF: {
		extensions: []string{".pdf"},
		mimeTypes:  []string{"application/pdf"},
	},
	fieldPreview: {
		extensions: []string{".png", ".jpg", ".jpeg"},
		mimeTypes:  []string{"image/png", "image/jpeg"},
	},
}

type bulletinService struct {
	records  repository.RecordRepository
	editor   usecase.EditorUsecase
	notifier *changeNotifier
	now      clock
	logger   *slog.Logger
}

// BulletinServiceParams holds dependencies for BulletinService, injected by Fx.
type BulletinServiceParams struct {
	fx.In

	Records   repository.RecordRepository
	Editor    usecase.EditorUsecase
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewBulletinService(params BulletinServiceParams) usecase.BulletinUsecase {
	return &bulletinService{
		records:  params.Records,
		editor:   params.Editor,
		notifier: &changeNotifier{publisher: params.Publisher, logger: params.Logger},
		now:      newClock(params.Config),
		logger:   params.Logger,
	}
}

func (s *bulletinService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *bulletinService) today() string {
	return s.now().Format(time.DateOnly)
}

func (s *bulletinService) list(ctx context.Context, collection entity.Collection) ([]*entity.Record, error) {
	records, err := s.records.List(ctx, collection)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "list "+collection.String())
	}

	return records, nil
}

func (s *bulletinService) get(ctx context.Context, collection entity.Collection, id string) (*entity.Record, error) {
	rec, err := s.records.Get(ctx, collection, id)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "get "+collection.String()+"/"+id)
	}

	return rec, nil
}

func (s *bulletinService) create(ctx context.Context, collection entity.Collection, fields entity.Fields) (*entity.Record, error) {
	id, err := s.records.Create(ctx, collection, fields)
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "create "+collection.String())
	}

	s.notifier.notify(ctx, collection, id, entity.ChangeCreated, fields.Keys())
	s.log(ctx).Info("Bulletin record created", slog.String("collection", collection.String()), slog.String("record_id", id))

	return &entity.Record{ID: id, Fields: fields}, nil
}

func (s *bulletinService) patch(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) (*entity.Record, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}

	if err := s.editor.Dispatch(ctx, entity.FieldChangesFrom(collection, id, fields)...); err != nil {
		return nil, err
	}

	return s.get(ctx, collection, id)
}

func (s *bulletinService) delete(ctx context.Context, collection entity.Collection, id string, confirmed bool) error {
	if err := requireConfirmation(confirmed); err != nil {
		return err
	}

	if err := s.records.Delete(ctx, collection, id); err != nil {
		return storeError(err, domainerrors.ErrNotFound, "delete "+collection.String()+"/"+id)
	}

	s.notifier.notify(ctx, collection, id, entity.ChangeDeleted, nil)

	return nil
}

func (s *bulletinService) ListNews(ctx context.Context) ([]*entity.NewsItem, error) {
	records, err := s.list(ctx, entity.CollectionNews)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.NewsItem, 0, len(records))
	for _, rec := range records {
		item, err := entity.NewsItemFromRecord(rec)
		if err != nil {
			s.log(ctx).Warn("Skipping malformed news record", slog.String("record_id", rec.ID), slog.Any("error", err))

			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *bulletinService) GetNews(ctx context.Context, id string) (*entity.NewsItem, error) {
	rec, err := s.get(ctx, entity.CollectionNews, id)
	if err != nil {
		return nil, err
	}

	return entity.NewsItemFromRecord(rec)
}

func (s *bulletinService) CreateNews(ctx context.Context) (*entity.NewsItem, error) {
	rec, err := s.create(ctx, entity.CollectionNews, entity.NewNewsFields(s.today()))
	if err != nil {
		return nil, err
	}

	return entity.NewsItemFromRecord(rec)
}

func (s *bulletinService) PatchNews(ctx context.Context, id string, fields entity.Fields) (*entity.NewsItem, error) {
	rec, err := s.patch(ctx, entity.CollectionNews, id, fields)
	if err != nil {
		return nil, err
	}

	return entity.NewsItemFromRecord(rec)
}

func (s *bulletinService) DeleteNews(ctx context.Context, id string, confirmed bool) error {
	return s.delete(ctx, entity.CollectionNews, id, confirmed)
}

// AttachFile stores the upload as a data URI and records its file name.
func (s *bulletinService) AttachFile(ctx context.Context, id, field, fileName string, data []byte) (*entity.NewsItem, error) {
	rule, ok := attachmentRules[field]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "%s is not an attachment field", field)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "file is empty")
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !slices.Contains(rule.extensions, ext) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedFile, "%s does not accept %q", field, fileName)
	}

	detected := mimetype.Detect(data)
	if !slices.ContainsFunc(rule.mimeTypes, detected.Is) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedFile, "%s content is %s", fileName, detected.String())
	}

	fields := entity.Fields{
		field:      encodeDataURI(detected.String(), data),
		"fileName": fileName,
	}

	item, err := s.PatchNews(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Newsletter file attached",
		slog.String("record_id", id),
		slog.String("field", field),
		slog.Int("size", len(data)),
	)

	return item, nil
}

func (s *bulletinService) Attachment(ctx context.Context, id, field string) (*usecase.Attachment, error) {
	if _, ok := attachmentRules[field]; !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "%s is not an attachment field", field)
	}

	item, err := s.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		uri  string
		name string
	)
	switch field {
	case fieldPDF:
		uri = item.PDFURL
		// fileName belongs to whichever file was uploaded last
		name = item.FileName
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			name = defaultPDFName
		}
	case fieldPreview:
		uri = item.PreviewImageURL
		name = "oct_newsletter_" + item.Date + ".png"
	}

	if uri == "" {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "news %s has no %s", id, field)
	}

	contentType, data, err := decodeDataURI(uri)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.Attachment{FileName: name, ContentType: contentType, Data: data}, nil
}

func (s *bulletinService) ListNotices(ctx context.Context) ([]*entity.Notice, error) {
	records, err := s.list(ctx, entity.CollectionNotices)
	if err != nil {
		return nil, err
	}

	notices := make([]*entity.Notice, 0, len(records))
	for _, rec := range records {
		notice, err := entity.NoticeFromRecord(rec)
		if err != nil {
			s.log(ctx).Warn("Skipping malformed notice record", slog.String("record_id", rec.ID), slog.Any("error", err))

			continue
		}
		notices = append(notices, notice)
	}

	return notices, nil
}

func (s *bulletinService) GetNotice(ctx context.Context, id string) (*entity.Notice, error) {
	rec, err := s.get(ctx, entity.CollectionNotices, id)
	if err != nil {
		return nil, err
	}

	return entity.NoticeFromRecord(rec)
}

func (s *bulletinService) CreateNotice(ctx context.Context) (*entity.Notice, error) {
	rec, err := s.create(ctx, entity.CollectionNotices, entity.NewNoticeFields(s.today()))
	if err != nil {
		return nil, err
	}

	return entity.NoticeFromRecord(rec)
}

func (s *bulletinService) PatchNotice(ctx context.Context, id string, fields entity.Fields) (*entity.Notice, error) {
	rec, err := s.patch(ctx, entity.CollectionNotices, id, fields)
	if err != nil {
		return nil, err
	}

	return entity.NoticeFromRecord(rec)
}

func (s *bulletinService) DeleteNotice(ctx context.Context, id string, confirmed bool) error {
	return s.delete(ctx, entity.CollectionNotices, id, confirmed)
}

func (s *bulletinService) GetFeature(ctx context.Context) (*entity.MonthlyFeature, error) {
	rec, err := s.records.Get(ctx, entity.CollectionFeatures, entity.FeatureID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return &entity.MonthlyFeature{ID: entity.FeatureID, Books: []string{}}, nil
	}
	if err != nil {
		return nil, storeError(err, domainerrors.ErrNotFound, "get feature")
	}

	return entity.MonthlyFeatureFromRecord(rec)
}

func (s *bulletinService) PatchFeature(ctx context.Context, fields entity.Fields) (*entity.MonthlyFeature, error) {
	if len(fields) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no fields to update")
	}
	for _, field := range fields.Keys() {
		if err := entity.ValidateField(entity.CollectionFeatures, field, fields[field]); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}
	}

	if err := s.ensureFeature(ctx); err != nil {
		return nil, err
	}

	rec, err := s.patch(ctx, entity.CollectionFeatures, entity.FeatureID, fields)
	if err != nil {
		return nil, err
	}

	return entity.MonthlyFeatureFromRecord(rec)
}

// ensureFeature writes the empty feature record before its first edit
func (s *bulletinService) ensureFeature(ctx context.Context) error {
	_, err := s.records.Get(ctx, entity.CollectionFeatures, entity.FeatureID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return storeError(err, domainerrors.ErrNotFound, "get feature")
	}

	fields := entity.NewFeatureFields()
	if err := s.records.Put(ctx, entity.CollectionFeatures, entity.FeatureID, fields); err != nil {
		return storeError(err, domainerrors.ErrNotFound, "create feature")
	}

	s.notifier.notify(ctx, entity.CollectionFeatures, entity.FeatureID, entity.ChangeCreated, fields.Keys())
	s.log(ctx).Info("Monthly feature created", slog.String("record_id", entity.FeatureID))

	return nil
}

func (s *bulletinService) InsertMarkup(ctx context.Context, collection entity.Collection, id, toolKey string) (string, error) {
	switch collection {
	case entity.CollectionNews, entity.CollectionNotices:
	case entity.CollectionFeatures:
		if id != entity.FeatureID {
			return "", errors.Wrapf(domainerrors.ErrNotFound, "features/%s", id)
		}
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "%s has no rich-text content", collection)
	}

	tool, ok := entity.FindMarkupTool(collection, toolKey)
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrUnknownMarkupTool, "%s for %s", toolKey, collection)
	}

	if collection == entity.CollectionFeatures {
		if err := s.ensureFeature(ctx); err != nil {
			return "", err
		}
	}

	rec, err := s.get(ctx, collection, id)
	if err != nil {
		return "", err
	}

	current, _ := rec.Fields["content"].(string)
	content := current + tool.Snippet()

	if err := s.editor.Dispatch(ctx, entity.FieldChanged(collection, id, "content", content)); err != nil {
		return "", err
	}

	return content, nil
}

func encodeDataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URI has no payload")
	}

	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Wrap(err, "decode data URI")
	}

	return contentType, data, nil
}
