package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ConnectTimeout   = 10 * time.Second
	OperationTimeout = 45 * time.Second
)

// GormStore keeps every collection in the documents table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// GetDB returns the underlying database connection for debugging purposes
func (s *GormStore) GetDB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the documents table.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.Document{})
}

func (s *GormStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

func (s *GormStore) Collection(name string) Collection {
	return &gormCollection{db: s.db, name: name}
}

// WithTimeouts adds the connect and statement timeouts to a PostgreSQL DSN,
// in URL or key=value form, unless the DSN already sets them.
func WithTimeouts(dsn string) string {
	connect := fmt.Sprintf("%d", int(ConnectTimeout.Seconds()))
	statement := fmt.Sprintf("%d", OperationTimeout.Milliseconds())

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return dsn
		}
		q := u.Query()
		if q.Get("connect_timeout") == "" {
			q.Set("connect_timeout", connect)
		}
		if q.Get("statement_timeout") == "" {
			q.Set("statement_timeout", statement)
		}
		u.RawQuery = q.Encode()
		return u.String()
	}

	if !strings.Contains(dsn, "connect_timeout=") {
		dsn += " connect_timeout=" + connect
	}
	if !strings.Contains(dsn, "statement_timeout=") {
		dsn += " statement_timeout=" + statement
	}
	return strings.TrimSpace(dsn)
}

type gormCollection struct {
	db   *gorm.DB
	name string
}

func (c *gormCollection) Name() string {
	return c.name
}

func (c *gormCollection) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, OperationTimeout)
	return c.db.WithContext(ctx), cancel
}

func (c *gormCollection) FindAll(ctx context.Context) ([]Entry, error) {
	db, cancel := c.session(ctx)
	defer cancel()

	var rows []models.Document
	err := db.Where("collection = ?", c.name).Order("position ASC").Order("created_at ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, Entry{ID: r.ID, Body: []byte(r.Body)})
	}
	return out, nil
}

func (c *gormCollection) FindOne(ctx context.Context, id string) (Entry, error) {
	db, cancel := c.session(ctx)
	defer cancel()

	var row models.Document
	err := db.Where("collection = ? AND id = ?", c.name, id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Entry{}, errs.ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return Entry{ID: row.ID, Body: []byte(row.Body)}, nil
}

// Upsert keeps the position of an existing document; a new one goes last.
func (c *gormCollection) Upsert(ctx context.Context, id string, body json.RawMessage) error {
	db, cancel := c.session(ctx)
	defer cancel()

	return db.Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&models.Document{}).
			Where("collection = ?", c.name).
			Select("COALESCE(MAX(position), -1)").
			Scan(&last).Error; err != nil {
			return err
		}
		row := models.Document{Collection: c.name, ID: id, Position: last + 1, Body: datatypes.JSON(body)}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).Create(&row).Error
	})
}

func (c *gormCollection) ReplaceAll(ctx context.Context, docs []Entry) error {
	db, cancel := c.session(ctx)
	defer cancel()

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", c.name).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		rows := make([]models.Document, 0, len(docs))
		for i, d := range docs {
			rows = append(rows, models.Document{Collection: c.name, ID: d.ID, Position: int64(i), Body: []byte(d.Body)})
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

func (c *gormCollection) Delete(ctx context.Context, id string) (bool, error) {
	db, cancel := c.session(ctx)
	defer cancel()

	res := db.Where("collection = ? AND id = ?", c.name, id).Delete(&models.Document{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
