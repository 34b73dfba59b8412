package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollection(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStore().Collection("things")

	require.NoError(t, c.Upsert(ctx, "b", json.RawMessage(`{"n":1}`)))
	require.NoError(t, c.Upsert(ctx, "a", json.RawMessage(`{"n":2}`)))
	require.NoError(t, c.Upsert(ctx, "b", json.RawMessage(`{"n":3}`)))

	all, err := c.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "upsert keeps position")
	assert.JSONEq(t, `{"n":3}`, string(all[0].Body))

	_, err = c.FindOne(ctx, "zzz")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	deleted, err := c.Delete(ctx, "b")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = c.Delete(ctx, "b")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, c.ReplaceAll(ctx, []Entry{{ID: "x", Body: json.RawMessage(`{}`)}, {ID: "y", Body: json.RawMessage(`{}`)}}))
	all, err = c.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, []string{all[0].ID, all[1].ID})
}

func TestMemoryStoreOutage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := store.Collection("things")
	require.NoError(t, c.Upsert(ctx, "a", json.RawMessage(`{}`)))

	store.SetUnavailable(true)
	_, err := c.FindAll(ctx)
	assert.True(t, errs.IsStoreUnavailable(err))
	assert.Error(t, store.Ping(ctx))

	store.SetUnavailable(false)
	all, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUnconfiguredStore(t *testing.T) {
	ctx := context.Background()
	c := UnconfiguredStore{}.Collection(ProjectsCollection)
	assert.Equal(t, ProjectsCollection, c.Name())

	_, err := c.FindAll(ctx)
	assert.ErrorIs(t, err, errs.ErrStoreNotConfigured)
	assert.ErrorIs(t, c.Upsert(ctx, "a", nil), errs.ErrStoreNotConfigured)
	assert.ErrorIs(t, UnconfiguredStore{}.Ping(ctx), errs.ErrStoreNotConfigured)
}

func TestWithTimeouts(t *testing.T) {
	got := WithTimeouts("postgres://u:p@db.internal:5432/domp?sslmode=require")
	assert.Contains(t, got, "connect_timeout=10")
	assert.Contains(t, got, "statement_timeout=45000")
	assert.Contains(t, got, "sslmode=require")

	got = WithTimeouts("postgres://u:p@db/domp?connect_timeout=3")
	assert.Contains(t, got, "connect_timeout=3")
	assert.NotContains(t, got, "connect_timeout=10")

	got = WithTimeouts("host=localhost user=domp dbname=domp")
	assert.Equal(t, "host=localhost user=domp dbname=domp connect_timeout=10 statement_timeout=45000", got)
}
