package usecase

import (
	"context"

	"library/internal/domain/entity"
)

// Attachment is a decoded newsletter file ready for download
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// BulletinUsecase defines the newsletter, notice and monthly feature use cases
type BulletinUsecase interface {
	ListNews(ctx context.Context) ([]*entity.NewsItem, error)
	GetNews(ctx context.Context, id string) (*entity.NewsItem, error)
	CreateNews(ctx context.Context) (*entity.NewsItem, error)
	PatchNews(ctx context.Context, id string, fields entity.Fields) (*entity.NewsItem, error)
	DeleteNews(ctx context.Context, id string, confirmed bool) error

	// AttachFile stores an uploaded file inline as a data URI on pdfUrl or previewImageUrl
	AttachFile(ctx context.Context, id, field, fileName string, data []byte) (*entity.NewsItem, error)

	// Attachment decodes a stored file for download
	Attachment(ctx context.Context, id, field string) (*Attachment, error)

	ListNotices(ctx context.Context) ([]*entity.Notice, error)
	GetNotice(ctx context.Context, id string) (*entity.Notice, error)
	CreateNotice(ctx context.Context) (*entity.Notice, error)
	PatchNotice(ctx context.Context, id string, fields entity.Fields) (*entity.Notice, error)
	DeleteNotice(ctx context.Context, id string, confirmed bool) error

	// GetFeature returns the monthly feature, empty until it is first edited
	GetFeature(ctx context.Context) (*entity.MonthlyFeature, error)

	// PatchFeature writes the named feature fields, creating the record on first use
	PatchFeature(ctx context.Context, fields entity.Fields) (*entity.MonthlyFeature, error)

	// InsertMarkup appends a rich-text tool snippet to the record's content
	InsertMarkup(ctx context.Context, collection entity.Collection, id, toolKey string) (string, error)
}
