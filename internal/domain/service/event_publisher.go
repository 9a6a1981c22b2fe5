package service

import (
	"context"

	"library/internal/domain/entity"
)

// ChangeEvent announces a committed mutation so that listeners can refresh their views
type ChangeEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Collection entity.Collection `json:"collection"`
	RecordID   string            `json:"record_id"`
	Op         entity.ChangeOp   `json:"op"`
	Fields     []string          `json:"fields,omitempty"`
}

// EventPublisher defines the interface for publishing change events to a message queue
type EventPublisher interface {
	// PublishChange publishes one change event
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
