// Package memory provides a process-local record store for development and tests.
package memory

import (
	"context"
	"reflect"
	"sync"

	"library/internal/domain/entity"
	"library/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store keeps every collection in maps guarded by one lock.
type Store struct {
	mu          sync.RWMutex
	collections map[entity.Collection]map[string]entity.Fields
	order       map[entity.Collection][]string // insertion order per collection
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		collections: make(map[entity.Collection]map[string]entity.Fields),
		order:       make(map[entity.Collection][]string),
	}
}

// NewRecordRepository returns the store as a repository.RecordRepository.
func NewRecordRepository() repository.RecordRepository {
	return NewStore()
}

func (s *Store) Create(ctx context.Context, collection entity.Collection, fields entity.Fields) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]entity.Fields)
		s.collections[collection] = records
	}

	id := uuid.NewString()
	records[id] = cloneFields(fields)
	s.order[collection] = append(s.order[collection], id)

	return id, nil
}

func (s *Store) Put(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.collections[collection]
	if !ok {
		records = make(map[string]entity.Fields)
		s.collections[collection] = records
	}

	existing, ok := records[id]
	if !ok {
		records[id] = cloneFields(fields)
		s.order[collection] = append(s.order[collection], id)

		return nil
	}

	for k, v := range fields {
		existing[k] = cloneValue(v)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, collection entity.Collection, id string) (*entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	return &entity.Record{ID: id, Fields: cloneFields(fields)}, nil
}

// List returns records in insertion order.
func (s *Store) List(ctx context.Context, collection entity.Collection) ([]*entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*entity.Record, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		fields, ok := s.collections[collection][id]
		if !ok {
			continue
		}
		records = append(records, &entity.Record{ID: id, Fields: cloneFields(fields)})
	}

	return records, nil
}

func (s *Store) Patch(ctx context.Context, collection entity.Collection, id string, fields entity.Fields) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return repository.ErrRecordNotFound
	}

	for k, v := range fields {
		existing[k] = cloneValue(v)
	}

	return nil
}

func (s *Store) AppendToArray(ctx context.Context, collection entity.Collection, id, field string, value any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return repository.ErrRecordNotFound
	}

	var items []any
	switch current := existing[field].(type) {
	case nil:
	case []any:
		items = current
	default:
		return errors.Errorf("field %s of %s/%s is not an array", field, collection, id)
	}

	element := cloneValue(value)
	for _, item := range items {
		if reflect.DeepEqual(item, element) {
			return nil
		}
	}
	existing[field] = append(items, element)

	return nil
}

func (s *Store) Delete(ctx context.Context, collection entity.Collection, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return repository.ErrRecordNotFound
	}

	delete(s.collections[collection], id)
	ids := s.order[collection]
	for i, candidate := range ids {
		if candidate == id {
			s.order[collection] = append(ids[:i:i], ids[i+1:]...)

			break
		}
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}

func cloneFields(fields entity.Fields) entity.Fields {
	cloned := make(entity.Fields, len(fields))
	for k, v := range fields {
		cloned[k] = cloneValue(v)
	}

	return cloned
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case entity.Fields:
		return map[string]any(cloneFields(typed))
	case map[string]any:
		return map[string]any(cloneFields(typed))
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}
