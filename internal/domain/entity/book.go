package entity

import "strings"

// Book is a catalog entry. Reviews are embedded and append-only.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Description   string   `json:"description"`
	CoverURL      string   `json:"coverUrl"`
	Category      string   `json:"category"`
	IsNew         bool     `json:"isNew"`
	IsRecommended bool     `json:"isRecommended"`
	Reviews       []Review `json:"reviews"`
}

// BookDetails is the descriptive part of a book that the completion service can fill in.
type BookDetails struct {
	Title         string `json:"title,omitempty"`
	Author        string `json:"author"`
	Publisher     string `json:"publisher"`
	PublishedDate string `json:"publishedDate"`
	Description   string `json:"description"`
	Category      string `json:"category"`
}

// BookFromRecord decodes a stored book.
func BookFromRecord(rec *Record) (*Book, error) {
	book := &Book{}
	if err := decodeRecord(rec, book); err != nil {
		return nil, err
	}
	book.ID = rec.ID
	if book.Reviews == nil {
		book.Reviews = []Review{}
	}

	return book, nil
}

// Matches reports whether the lowercased term is a substring of the title, author or category.
func (b *Book) Matches(lowerTerm string) bool {
	return strings.Contains(strings.ToLower(b.Title), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Author), lowerTerm) ||
		strings.Contains(strings.ToLower(b.Category), lowerTerm)
}

// NewBookFields returns the fields of a manually added book.
func NewBookFields() Fields {
	return Fields{
		"title":         "新規タイトル",
		"author":        "著者名",
		"category":      "小説",
		"isNew":         true,
		"isRecommended": false,
		"reviews":       []any{},
		"coverUrl":      "",
	}
}

// GeneratedBookFields returns the fields of a book produced by bulk AI registration.
func GeneratedBookFields(d *BookDetails) Fields {
	return Fields{
		"title":         d.Title,
		"author":        d.Author,
		"publisher":     d.Publisher,
		"publishedDate": d.PublishedDate,
		"description":   d.Description,
		"category":      d.Category,
		"isNew":         true,
		"isRecommended": false,
		"reviews":       []any{},
		"coverUrl":      "",
	}
}

// EnrichmentFields returns the five fields patched onto a book by AI enrichment.
func EnrichmentFields(d *BookDetails) Fields {
	return Fields{
		"author":        d.Author,
		"publisher":     d.Publisher,
		"publishedDate": d.PublishedDate,
		"description":   d.Description,
		"category":      d.Category,
	}
}
