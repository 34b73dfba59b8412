package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quote(createdAt time.Time) models.QuoteRequest {
	return models.QuoteRequest{
		ID:           uuid.NewString(),
		Nombre:       "Ana López",
		Email:        "ana@example.com",
		Telefono:     "6141234567",
		TipoProyecto: "residencial",
		Mensaje:      "Quiero construir una casa",
		Status:       models.QuoteStatusNuevo,
		Origen:       models.QuoteOriginWeb,
		CreatedAt:    createdAt.UTC(),
	}
}

func TestQuoteListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepo(NewMemoryStore())

	now := time.Now()
	older, newer := quote(now.Add(-time.Hour)), quote(now)
	require.NoError(t, repo.Add(ctx, older))
	require.NoError(t, repo.Add(ctx, newer))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
	assert.Nil(t, got[0].PresupuestoEstimado)
}

func TestQuoteListUnconfigured(t *testing.T) {
	_, err := NewQuoteRepo(UnconfiguredStore{}).ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, errs.IsConfigMissingError(err))
}

func TestQuoteUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepo(NewMemoryStore())
	q := quote(time.Now())
	require.NoError(t, repo.Add(ctx, q))

	require.NoError(t, repo.UpdateStatus(ctx, q.ID, models.QuoteStatusContactado))
	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusContactado, got[0].Status)
	assert.Equal(t, q.Mensaje, got[0].Mensaje)

	err = repo.UpdateStatus(ctx, q.ID, "perdido")
	assert.ErrorIs(t, err, errs.ErrInvalidField)
	got, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusContactado, got[0].Status, "rejected status leaves the lead alone")

	err = repo.UpdateStatus(ctx, "not-an-id", models.QuoteStatusCerrado)
	assert.ErrorIs(t, err, errs.ErrInvalidField)

	err = repo.UpdateStatus(ctx, uuid.NewString(), models.QuoteStatusCerrado)
	assert.True(t, errs.IsNotFound(err))
}

func TestQuoteDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteRepo(NewMemoryStore())
	q := quote(time.Now())
	require.NoError(t, repo.Add(ctx, q))

	require.NoError(t, repo.Delete(ctx, q.ID))
	assert.True(t, errs.IsNotFound(repo.Delete(ctx, q.ID)))
	assert.ErrorIs(t, repo.Delete(ctx, "123"), errs.ErrInvalidField)
}
