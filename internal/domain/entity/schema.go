package entity

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldKind is the value type accepted for an editable field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
	KindStringList
)

// FieldSpec describes one editable attribute of a collection.
type FieldSpec struct {
	Kind  FieldKind
	Allow func(string) bool // optional enumeration check for string fields
}

// ErrFieldNotEditable is returned for fields that may never be patched, such as "id" or "reviews".
var ErrFieldNotEditable = errors.New("field is not editable")

var editableFields = map[Collection]map[string]FieldSpec{
	CollectionBooks: {
		"title":         {Kind: KindString},
		"author":        {Kind: KindString},
		"publisher":     {Kind: KindString},
		"publishedDate": {Kind: KindString},
		"description":   {Kind: KindString},
		"category":      {Kind: KindString},
		"coverUrl":      {Kind: KindString},
		"isNew":         {Kind: KindBool},
		"isRecommended": {Kind: KindBool},
	},
	CollectionNews: {
		"date":            {Kind: KindString},
		"title":           {Kind: KindString},
		"content":         {Kind: KindString},
		"pdfUrl":          {Kind: KindString},
		"fileName":        {Kind: KindString},
		"previewImageUrl": {Kind: KindString},
	},
	CollectionNotices: {
		"date":  {Kind: KindString},
		"title": {Kind: KindString},
		"category": {Kind: KindString, Allow: func(v string) bool {
			return NoticeCategory(v).IsValid()
		}},
		"content":      {Kind: KindString},
		"thumbnailUrl": {Kind: KindString},
	},
	CollectionFeatures: {
		"title":       {Kind: KindString},
		"subtitle":    {Kind: KindString},
		"description": {Kind: KindString},
		"content":     {Kind: KindString},
		"imageUrl":    {Kind: KindString},
		"books":       {Kind: KindStringList},
	},
	CollectionReservations: {
		"status": {Kind: KindString, Allow: func(v string) bool {
			return ReservationStatus(v).IsValid()
		}},
	},
}

// ValidateField checks that value may be written to field of the collection.
func ValidateField(collection Collection, field string, value any) error {
	fields, ok := editableFields[collection]
	if !ok {
		return errors.Errorf("unknown collection %q", collection)
	}

	spec, ok := fields[field]
	if !ok {
		return errors.Wrapf(ErrFieldNotEditable, "%s.%s", collection, field)
	}

	switch spec.Kind {
	case KindBool:
		if _, ok := value.(bool); !ok {
			return errors.Errorf("%s.%s expects a boolean, got %s", collection, field, describe(value))
		}
	case KindString:
		s, ok := value.(string)
		if !ok {
			return errors.Errorf("%s.%s expects a string, got %s", collection, field, describe(value))
		}
		if spec.Allow != nil && !spec.Allow(s) {
			return errors.Errorf("%s.%s does not accept %q", collection, field, s)
		}
	case KindStringList:
		if !isStringList(value) {
			return errors.Errorf("%s.%s expects a list of strings, got %s", collection, field, describe(value))
		}
	}

	return nil
}

// IsEditable reports whether the collection has a patch schema.
func IsEditable(collection Collection) bool {
	_, ok := editableFields[collection]

	return ok
}

// isStringList accepts []string and decoded JSON arrays whose elements are all strings.
func isStringList(v any) bool {
	switch list := v.(type) {
	case []string:
		return true
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func describe(v any) string {
	if v == nil {
		return "null"
	}

	return fmt.Sprintf("%T", v)
}
