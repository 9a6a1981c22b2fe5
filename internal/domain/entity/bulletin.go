package entity

// NoticeCategory classifies an administrator notice.
type NoticeCategory string

const (
	NoticeImportant NoticeCategory = "IMPORTANT"
	NoticeEvent     NoticeCategory = "EVENT"
	NoticeInfo      NoticeCategory = "INFO"
)

func (c NoticeCategory) IsValid() bool {
	switch c {
	case NoticeImportant, NoticeEvent, NoticeInfo:
		return true
	default:
		return false
	}
}

// NewsItem is a newsletter issue. Content may carry rich-text markup and the
// attachments are stored inline as data URIs.
type NewsItem struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	PDFURL          string `json:"pdfUrl,omitempty"`
	FileName        string `json:"fileName,omitempty"`
	PreviewImageURL string `json:"previewImageUrl,omitempty"`
}

// Notice is a short announcement shown on the top page.
type Notice struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Title        string         `json:"title"`
	Category     NoticeCategory `json:"category"`
	Content      string         `json:"content"`
	ThumbnailURL string         `json:"thumbnailUrl,omitempty"`
}

// FeatureID is the only record of the features collection.
const FeatureID = "current_feature"

// MonthlyFeature is the single editorial piece shown on the top page. Books holds catalog IDs.
type MonthlyFeature struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	Books       []string `json:"books"`
}

func NewsItemFromRecord(rec *Record) (*NewsItem, error) {
	item := &NewsItem{}
	if err := decodeRecord(rec, item); err != nil {
		return nil, err
	}
	item.ID = rec.ID

	return item, nil
}

func NoticeFromRecord(rec *Record) (*Notice, error) {
	notice := &Notice{}
	if err := decodeRecord(rec, notice); err != nil {
		return nil, err
	}
	notice.ID = rec.ID

	return notice, nil
}

func MonthlyFeatureFromRecord(rec *Record) (*MonthlyFeature, error) {
	feature := &MonthlyFeature{}
	if err := decodeRecord(rec, feature); err != nil {
		return nil, err
	}
	feature.ID = rec.ID
	if feature.Books == nil {
		feature.Books = []string{}
	}

	return feature, nil
}

// NewFeatureFields returns the fields the feature record starts with before its first edit.
func NewFeatureFields() Fields {
	return Fields{
		"title":       "",
		"subtitle":    "",
		"description": "",
		"content":     "",
		"imageUrl":    "",
		"books":       []any{},
	}
}

// NewNewsFields returns the fields of a new newsletter dated today.
func NewNewsFields(today string) Fields {
	return Fields{
		"date":    today,
		"title":   "新規図書館だより",
		"content": "",
	}
}

// NewNoticeFields returns the fields of a new notice dated today.
func NewNoticeFields(today string) Fields {
	return Fields{
		"date":     today,
		"title":    "新規お知らせ",
		"category": string(NoticeInfo),
		"content":  "",
	}
}
