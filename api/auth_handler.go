package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/domp-site-backend/config"
	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName  = "admin_session"
	sessionCookieValue = "ok"
	sessionDuration    = 8 * time.Hour
)

func hasAdminSession(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	return err == nil && cookie.Value == sessionCookieValue
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	username  string
	password  string
	secure    bool
}

func newAuthHandler(c map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		username:  config.GetString(c, "ADMIN_USER", ""),
		password:  config.GetString(c, "ADMIN_PASSWORD", ""),
		secure:    config.GetString(c, "ENV", "") == "production",
	}
}

func (h authHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// login checks the submitted credentials against ADMIN_USER and
// ADMIN_PASSWORD and sets the session cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.username == "" || h.password == "" {
			h.responder.WriteError(w, errs.NewConfigMissingError("ADMIN_USER/ADMIN_PASSWORD",
				"La autenticación de administrador no está configurada. Contacta al administrador del sistema."))
			return
		}

		var req loginRequest
		if err := decodeJSON(w, r, "inicio de sesión", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if req.Username != h.username || req.Password != h.password {
			h.logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("Rejected admin login")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		http.SetCookie(w, h.sessionCookie(sessionCookieValue, int(sessionDuration.Seconds())))
		h.responder.WriteData(w, http.StatusOK, nil, "Sesión iniciada")
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessionCookie("", -1))
		h.responder.WriteData(w, http.StatusOK, nil, "Sesión cerrada")
	}
}
