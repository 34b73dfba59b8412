package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rpupo63/domp-site-backend/errs"
	"github.com/rs/zerolog"
)

// maxBodySize caps request bodies. Settings documents with long texts are
// the largest payload the admin panel sends.
const maxBodySize = 1 << 20

// envelope is the shape of every response body
type envelope struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Warning string `json:"warning,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Check if response is too large (e.g., > 10MB)
	const maxResponseSize = 10 * 1024 * 1024 // 10MB
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")

		status = http.StatusInternalServerError
		jsonData, _ = json.Marshal(envelope{Message: "La respuesta excede el tamaño máximo permitido"})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a successful envelope. message is omitted when empty.
func (r Responder) WriteData(w http.ResponseWriter, status int, data any, message string) {
	r.WriteJSON(w, status, envelope{OK: true, Data: data, Message: message})
}

// WriteWarning answers 200 with data the client can use even though
// something went wrong while producing it.
func (r Responder) WriteWarning(w http.ResponseWriter, data any, warning string) {
	r.WriteJSON(w, http.StatusOK, envelope{OK: true, Data: data, Warning: warning})
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// Unexpected errors are logged and hidden behind a generic message
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, envelope{
			Message: "Error interno del servidor",
			Details: err.Error(),
		})
		return
	}

	event := r.logger.Warn()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		event = r.logger.Error()
	}
	event.Int("status", apiErr.StatusCode).Str("error", apiErr.GetFullError()).Msg("request failed")

	response := envelope{
		Message: apiErr.Message(),
		Field:   apiErr.Field,
	}
	if apiErr.Cause != nil {
		response.Details = apiErr.Cause.Error()
	}
	r.WriteJSON(w, apiErr.StatusCode, response)
}

// decodeJSON reads the request body into v. A body that cannot be read is
// a malformed payload; one that is not JSON is an invalid JSON error.
func decodeJSON(w http.ResponseWriter, r *http.Request, payloadName string, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return errs.NewMalformedPayloadError(payloadName, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
