// Package model holds the GORM models of the Postgres record store.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// RecordModel stores one document of any collection as a jsonb blob.
// IDs are generated UUIDs except for fixed records such as the monthly feature.
type RecordModel struct {
	Collection string            `gorm:"primaryKey;type:varchar(64)"`
	ID         string            `gorm:"primaryKey;type:varchar(64)"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `gorm:"not null;index"`
	UpdatedAt  time.Time         `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}
