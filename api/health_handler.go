package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	startupTime time.Time
	ping        func(ctx context.Context) error
}

func newHealthHandler(startupTime time.Time, ping func(ctx context.Context) error) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		startupTime: startupTime,
		ping:        ping,
	}
}

// health reports uptime and whether the store answers. The site keeps
// serving defaults without a store, so a failed ping is still a 200.
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Database: "ok",
		}
		if err := h.ping(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("Health check could not reach the store")
			resp.Status = "degraded"
			resp.Database = errMessage(err)
		}
		h.responder.WriteData(w, http.StatusOK, resp, "")
	}
}
