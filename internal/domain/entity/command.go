package entity

import (
	"maps"
	"slices"
)

// CommandKind identifies an editor command.
type CommandKind string

const (
	// CommandFieldChanged sets one field of an existing record.
	CommandFieldChanged CommandKind = "FieldChanged"
)

// Command is a single edit produced by an admin form. Commands are reduced
// into per-record patches by the editor.
type Command struct {
	Kind       CommandKind `json:"kind" validate:"required,oneof=FieldChanged"`
	Collection Collection  `json:"collection" validate:"required"`
	RecordID   string      `json:"recordId" validate:"required"`
	Field      string      `json:"field" validate:"required"`
	Value      any         `json:"value"`
}

// FieldChanged builds a FieldChanged command.
func FieldChanged(collection Collection, recordID, field string, value any) Command {
	return Command{
		Kind:       CommandFieldChanged,
		Collection: collection,
		RecordID:   recordID,
		Field:      field,
		Value:      value,
	}
}

// FieldChangesFrom expands a patch body into one command per field, ordered by field name.
func FieldChangesFrom(collection Collection, recordID string, fields Fields) []Command {
	cmds := make([]Command, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		cmds = append(cmds, FieldChanged(collection, recordID, field, fields[field]))
	}

	return cmds
}

// ChangeOp is the kind of mutation reported in a change event.
type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangePatched ChangeOp = "patched"
	ChangeDeleted ChangeOp = "deleted"
)
