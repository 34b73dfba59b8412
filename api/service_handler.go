package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type serviceHandler struct {
	responder   Responder
	logger      zerolog.Logger
	serviceRepo *database.ServiceRepo
}

func newServiceHandler(serviceRepo *database.ServiceRepo) serviceHandler {
	logger := log.With().Str("handlerName", "serviceHandler").Logger()

	return serviceHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		serviceRepo: serviceRepo,
	}
}

// getAllServices lists the catalog. The built-in catalog is served when the
// store is empty or unreachable, so this never fails.
func (h serviceHandler) getAllServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, http.StatusOK, h.serviceRepo.List(r.Context()), "")
	}
}

func (h serviceHandler) getService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service, ok := h.serviceRepo.ByID(r.Context(), chi.URLParam(r, "serviceID"))
		if !ok {
			h.responder.WriteError(w, errs.NewNotFound("servicio"))
			return
		}
		h.responder.WriteData(w, http.StatusOK, service, "")
	}
}

func (h serviceHandler) createService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ServiceInput
		if err := decodeJSON(w, r, "servicio", &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		service, err := h.serviceRepo.Create(r.Context(), in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("serviceId", service.ID).Msg("Service created")
		h.responder.WriteData(w, http.StatusCreated, service, "Servicio creado correctamente")
	}
}

func (h serviceHandler) updateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ServiceInput
		if err := decodeJSON(w, r, "servicio", &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if in.ID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("ID de servicio requerido"))
			return
		}

		service, err := h.serviceRepo.Update(r.Context(), in.ID, in)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, service, "Servicio actualizado correctamente")
	}
}

func (h serviceHandler) deleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if id == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("ID de servicio requerido"))
			return
		}

		if err := h.serviceRepo.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, nil, "Servicio eliminado correctamente")
	}
}
