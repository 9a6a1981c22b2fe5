// Package entity contains the core business objects of the library site.
package entity

import (
	"maps"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Collection names a group of loosely-typed records in the record store.
type Collection string

const (
	CollectionBooks        Collection = "books"
	CollectionReservations Collection = "reservations"
	CollectionNews         Collection = "news"
	CollectionNotices      Collection = "notices"
	CollectionFeatures     Collection = "features"
)

func (c Collection) String() string {
	return string(c)
}

// Fields is a partial or complete set of named record attributes.
type Fields map[string]any

// Keys returns the field names in sorted order.
func (f Fields) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// Clone returns a shallow copy of the fields.
func (f Fields) Clone() Fields {
	return maps.Clone(f)
}

// Record is a stored document: a store-generated ID plus its fields.
type Record struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// decodeRecord fills out from the record fields, leaving missing attributes at their zero values.
func decodeRecord(rec *Record, out any) error {
	if rec == nil {
		return errors.New("nil record")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := decoder.Decode(map[string]any(rec.Fields)); err != nil {
		return errors.Wrapf(err, "decode record %s", rec.ID)
	}

	return nil
}

// toFields encodes a typed value into record fields using its json tags.
func toFields(in any) (Fields, error) {
	out := map[string]any{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "json",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := decoder.Decode(in); err != nil {
		return nil, errors.WithStack(err)
	}

	return Fields(out), nil
}
