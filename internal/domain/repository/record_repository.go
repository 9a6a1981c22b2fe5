// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"library/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when a record does not exist in its collection.
var ErrRecordNotFound = errors.New("record not found")

// RecordRepository is the facade over the document store holding every collection.
// Writes are partial: fields not named in a call are never touched.
type RecordRepository interface {
	// Create stores a new record and returns its generated ID.
	Create(ctx context.Context, collection entity.Collection, fields entity.Fields) (string, error)

	// Put stores fields under a caller-chosen ID, creating the record or merging into it.
	Put(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error

	// Get retrieves a record by ID.
	Get(ctx context.Context, collection entity.Collection, id string) (*entity.Record, error)

	// List returns every record of a collection.
	List(ctx context.Context, collection entity.Collection) ([]*entity.Record, error)

	// Patch merges fields into an existing record.
	Patch(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error

	// AppendToArray adds value to the array field unless an equal element is already present.
	AppendToArray(ctx context.Context, collection entity.Collection, id, field string, value any) error

	// Delete removes a record.
	Delete(ctx context.Context, collection entity.Collection, id string) error

	// Close releases the underlying client.
	Close() error
}
