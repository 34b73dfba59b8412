package database

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
)

// QuoteRepo stores one document per lead. Unlike projects and services,
// leads are written individually.
type QuoteRepo struct {
	collection Collection
}

func NewQuoteRepo(store Store) *QuoteRepo {
	return &QuoteRepo{collection: store.Collection(QuotesCollection)}
}

// Add stores q under q.ID.
func (r *QuoteRepo) Add(ctx context.Context, q models.QuoteRequest) error {
	if err := upsert(ctx, r.collection, q.ID, q); err != nil {
		return errs.NewDatabaseError("guardar", "la cotización", err)
	}
	return nil
}

// ListAll returns every lead, newest first.
func (r *QuoteRepo) ListAll(ctx context.Context) ([]models.QuoteRequest, error) {
	quotes, err := findAll[models.QuoteRequest](ctx, r.collection)
	if err != nil {
		return nil, errs.NewDatabaseError("listar", "las cotizaciones", err)
	}
	for i := range quotes {
		if quotes[i].Status == "" {
			quotes[i].Status = models.QuoteStatusNuevo
		}
		if quotes[i].Origen == "" {
			quotes[i].Origen = models.QuoteOriginWeb
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteRepo) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) error {
	if err := validateQuoteID(id); err != nil {
		return err
	}
	if !status.Valid() {
		return errs.NewInvalidFieldError("status", "valores permitidos: nuevo, contactado, cotizado, cerrado")
	}

	q, err := findOne[models.QuoteRequest](ctx, r.collection, id)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.NewNotFound("cotización")
	}
	if err != nil {
		return errs.NewDatabaseError("leer", "la cotización", err)
	}

	q.Status = status
	if err := upsert(ctx, r.collection, id, q); err != nil {
		return errs.NewDatabaseError("actualizar", "la cotización", err)
	}
	return nil
}

func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	if err := validateQuoteID(id); err != nil {
		return err
	}
	deleted, err := r.collection.Delete(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("eliminar", "la cotización", err)
	}
	if !deleted {
		return errs.NewNotFound("cotización")
	}
	return nil
}

func validateQuoteID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errs.NewInvalidFieldError("id", "ID de cotización inválido")
	}
	return nil
}
