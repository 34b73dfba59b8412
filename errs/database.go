package errs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDatabaseTimeout    = errors.New("database timeout")
	ErrStoreNotConfigured = errors.New("document store not configured")
)

// storeRemediation is appended to write failures so the admin knows where to look.
const storeRemediation = "La base de datos no está disponible. Verifica: 1) que DATABASE_URL esté configurado, " +
	"2) que el servidor de base de datos esté activo, 3) que la red permita la conexión."

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
		Details:    notFoundMessage(entity),
	}
}

// notFoundMessage reads "Proyecto no encontrado" or "Cotización no encontrada".
// A leading article is dropped and the adjective agrees with the first noun.
func notFoundMessage(entity string) string {
	noun := strings.TrimSpace(entity)
	for _, article := range []string{"el ", "la ", "los ", "las "} {
		noun = strings.TrimPrefix(noun, article)
	}
	if noun == "" {
		return "Recurso no encontrado"
	}

	adjective := " no encontrado"
	head := strings.Fields(noun)[0]
	for _, suffix := range []string{"a", "ón", "d"} {
		if strings.HasSuffix(head, suffix) {
			adjective = " no encontrada"
			break
		}
	}

	first, size := utf8.DecodeRuneInString(noun)
	return string(unicode.ToUpper(first)) + noun[size:] + adjective
}

// NewDatabaseError creates a new database error with details about the operation.
// Every store failure is reported as a server error; the sentinel tells
// "not configured" apart from "unreachable" apart from a failed query.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("No se pudo %s %s", operation, entity)

	switch {
	case cause == nil:
	case errors.Is(cause, ErrNotFound):
		return NewNotFound(entity)
	case errors.Is(cause, ErrStoreNotConfigured):
		return NewConfigMissingError("DATABASE_URL", "La base de datos no está configurada")
	case errors.Is(cause, ErrDatabaseTimeout), errors.Is(cause, context.DeadlineExceeded):
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrDatabaseTimeout,
			Details:    fmt.Sprintf("%s. %s", details, storeRemediation),
			Cause:      cause,
		}
	case IsStoreUnavailable(cause):
		return &ApiErr{
			StatusCode: http.StatusInternalServerError,
			err:        ErrDatabaseConnection,
			Details:    fmt.Sprintf("%s. %s", details, storeRemediation),
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// IsStoreUnavailable reports whether err means the store could not be reached
// at all (not configured, connection refused, DNS failure or timeout), as
// opposed to a query that reached the store and failed.
func IsStoreUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStoreNotConfigured) ||
		errors.Is(err, ErrDatabaseConnection) ||
		errors.Is(err, ErrDatabaseTimeout) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "no such host", "failed to connect", "dial tcp", "connection reset", "i/o timeout"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func IsDatabaseQueryError(err error) bool {
	return errors.Is(err, ErrDatabaseQuery)
}

func IsStoreNotConfigured(err error) bool {
	return errors.Is(err, ErrStoreNotConfigured)
}
