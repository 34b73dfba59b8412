package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is the row shape of the generic document store. Every collection
// (settings, projects, services, cotizaciones) lives in the same table and is
// told apart by Collection. Position preserves the order documents were
// written in, which is the order list endpoints return.
//
// Body uses plain json rather than jsonb: jsonb normalizes key order and the
// social links object must come back in insertion order.
type Document struct {
	Collection string         `gorm:"column:collection;primaryKey;type:varchar(64);index:idx_documents_collection_position,priority:1"`
	ID         string         `gorm:"column:id;primaryKey;type:varchar(128)"`
	Position   int64          `gorm:"column:position;not null;default:0;index:idx_documents_collection_position,priority:2"`
	Body       datatypes.JSON `gorm:"column:body;type:json;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Document) TableName() string {
	return "documents"
}
