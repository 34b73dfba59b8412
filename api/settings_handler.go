package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/domp-site-backend/database"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rpupo63/domp-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const settingsFallbackWarning = "Base de datos no disponible, usando valores por defecto"

type settingsHandler struct {
	responder    Responder
	logger       zerolog.Logger
	settingsRepo *database.SettingsRepo
	ping         func(ctx context.Context) error
}

func newSettingsHandler(settingsRepo *database.SettingsRepo, ping func(ctx context.Context) error) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		settingsRepo: settingsRepo,
		ping:         ping,
	}
}

// getPublicSettings serves the site settings to the public pages. It never
// fails; the defaults stand in for an unreadable store.
func (h settingsHandler) getPublicSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, _ := h.settingsRepo.Get(r.Context())
		h.responder.WriteData(w, http.StatusOK, settings, "")
	}
}

// getAdminSettings is getPublicSettings plus a warning telling the admin
// the values shown are the defaults and not what is stored.
func (h settingsHandler) getAdminSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.Get(r.Context())
		if err != nil {
			h.responder.WriteWarning(w, settings, settingsFallbackWarning+": "+errMessage(err))
			return
		}
		if h.ping != nil {
			if pingErr := h.ping(r.Context()); pingErr != nil {
				h.logger.Warn().Err(pingErr).Msg("Serving default settings")
				h.responder.WriteWarning(w, settings, settingsFallbackWarning)
				return
			}
		}
		h.responder.WriteData(w, http.StatusOK, settings, "")
	}
}

// updateSettings merges a partial settings document into the stored one
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.SettingsPatch
		if err := decodeJSON(w, r, "configuración", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings, err := h.settingsRepo.Update(r.Context(), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, settings, "Configuración actualizada correctamente")
	}
}

// putSocialLink adds or replaces one social network link
func (h settingsHandler) putSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req socialLinkRequest
		if err := decodeJSON(w, r, "red social", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		settings, err := h.settingsRepo.SetSocialLink(r.Context(), chi.URLParam(r, "key"), req.URL)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, settings, "Red social actualizada correctamente")
	}
}

func (h settingsHandler) deleteSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingsRepo.RemoveSocialLink(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteData(w, http.StatusOK, settings, "Red social eliminada correctamente")
	}
}

// errMessage is the client facing text of err
func errMessage(err error) string {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return err.Error()
}
