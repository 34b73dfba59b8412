package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestModelColumnsReadGormTags(t *testing.T) {
	assert.Equal(t,
		[]string{"collection", "id", "position", "body", "created_at", "updated_at"},
		modelColumns(Document{}))
}

func TestColumnMismatches(t *testing.T) {
	db := []string{"collection", "id", "legacy_slug", "position", "body", "deleted_at"}
	assert.Equal(t, []string{"legacy_slug", "deleted_at"}, ColumnMismatches(db, modelColumns(Document{})))
	assert.Empty(t, ColumnMismatches(modelColumns(Document{}), modelColumns(Document{})))
}

func TestDocumentPositionIndexIsComposite(t *testing.T) {
	s, err := schema.Parse(&Document{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	var columns []string
	for _, idx := range s.ParseIndexes() {
		if idx.Name != "idx_documents_collection_position" {
			continue
		}
		for _, f := range idx.Fields {
			columns = append(columns, f.DBName)
		}
	}
	assert.Equal(t, []string{"collection", "position"}, columns)
}
