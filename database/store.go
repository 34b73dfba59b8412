package database

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names
const (
	SettingsCollection = "settings"
	ProjectsCollection = "projects"
	ServicesCollection = "services"
	QuotesCollection   = "cotizaciones"
)

// Store is a document database: named collections of JSON documents keyed
// by string id.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
}

// Entry is one document of a collection.
type Entry struct {
	ID   string
	Body json.RawMessage
}

// Collection is a named group of documents. FindAll returns documents in the
// order they were first written. FindOne fails with errs.ErrNotFound when id
// is absent.
type Collection interface {
	Name() string
	FindAll(ctx context.Context) ([]Entry, error)
	FindOne(ctx context.Context, id string) (Entry, error)
	Upsert(ctx context.Context, id string, body json.RawMessage) error
	// ReplaceAll deletes every document of the collection and inserts docs
	// in order.
	ReplaceAll(ctx context.Context, docs []Entry) error
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

func findAll[T any](ctx context.Context, c Collection) ([]T, error) {
	entries, err := c.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		var v T
		if err := json.Unmarshal(e.Body, &v); err != nil {
			return nil, fmt.Errorf("decoding %s/%s: %w", c.Name(), e.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, c Collection, id string) (T, error) {
	var v T
	e, err := c.FindOne(ctx, id)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(e.Body, &v); err != nil {
		return v, fmt.Errorf("decoding %s/%s: %w", c.Name(), id, err)
	}
	return v, nil
}

func upsert(ctx context.Context, c Collection, id string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s/%s: %w", c.Name(), id, err)
	}
	return c.Upsert(ctx, id, body)
}

// replaceAll overwrites the collection with items, keyed by idOf.
func replaceAll[T any](ctx context.Context, c Collection, items []T, idOf func(T) string) error {
	docs := make([]Entry, 0, len(items))
	for _, item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding %s/%s: %w", c.Name(), idOf(item), err)
		}
		docs = append(docs, Entry{ID: idOf(item), Body: body})
	}
	return c.ReplaceAll(ctx, docs)
}
