package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Configuration & Environment Errors
var ErrConfigMissing = errors.New("configuration missing")

// Third-Party notification errors
var (
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrPartialFailure     = errors.New("partial failure")
)

// NewConfigMissingError reports that the operator forgot to configure key.
// It is a server error, distinct from a store outage.
func NewConfigMissingError(key, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s %w", key, ErrConfigMissing),
		Details:    message,
		Field:      key,
	}
}

func NewServiceUnavailableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("%s no respondió correctamente", service),
		Cause:      cause,
		Field:      "service",
	}
}

// NewDeliveryFailedError is returned when none of the delivery channels of a
// submission succeeded. reasons are shown to the client verbatim.
func NewDeliveryFailedError(reasons []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrPartialFailure,
		Details:    fmt.Sprintf("No se pudo registrar la cotización. %s", strings.Join(reasons, " ")),
	}
}

func IsConfigMissingError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}

func IsServiceUnavailableError(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
