package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// quoteSubmitter is implemented by services.QuoteIntake
type quoteSubmitter interface {
	Submit(ctx context.Context, p models.QuotePayload) (models.QuoteReceipt, error)
}

type quoteHandler struct {
	responder Responder
	logger    zerolog.Logger
	quoteRepo *database.QuoteRepo
	intake    quoteSubmitter
}

func newQuoteHandler(quoteRepo *database.QuoteRepo, intake quoteSubmitter) quoteHandler {
	logger := log.With().Str("handlerName", "quoteHandler").Logger()

	return quoteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		quoteRepo: quoteRepo,
		intake:    intake,
	}
}

// submitQuote takes a lead from the public contact form. The receipt tells
// the client which deliveries went through.
func (h quoteHandler) submitQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.QuotePayload
		if err := decodeJSON(w, r, "cotización", &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		receipt, err := h.intake.Submit(r.Context(), payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusCreated, receipt, "Cotización enviada correctamente. Te contactaremos pronto.")
	}
}

func (h quoteHandler) getAllQuotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quotes, err := h.quoteRepo.ListAll(r.Context())
		if err != nil {
			if errs.IsConfigMissingError(err) {
				err = errs.NewConfigMissingError("DATABASE_URL",
					"La base de datos no está configurada. No es posible listar cotizaciones.")
			}
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, quotes, "")
	}
}

func (h quoteHandler) updateQuoteStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteStatusRequest
		if err := decodeJSON(w, r, "estatus", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id := chi.URLParam(r, "quoteID")
		if err := h.quoteRepo.UpdateStatus(r.Context(), id, models.QuoteStatus(req.Status)); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, nil, "Estatus actualizado correctamente")
	}
}

func (h quoteHandler) deleteQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.quoteRepo.Delete(r.Context(), chi.URLParam(r, "quoteID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, nil, "Cotización eliminada correctamente")
	}
}
