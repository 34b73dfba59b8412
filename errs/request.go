package errs

import (
	"errors"
	"net/http"
)

var (
	Unauthorized = &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized, Details: "No autorizado"}
)

// Authentication & Authorization Errors
var (
	ErrMissingSession     = errors.New("missing admin session")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authentication & Authorization Error Constructors
func NewMissingSessionError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        errors.Join(ErrUnauthorized, ErrMissingSession),
		Details:    "No autorizado",
		Field:      "admin_session",
	}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        errors.Join(ErrUnauthorized, ErrInvalidCredentials),
		Details:    "Credenciales inválidas",
		Field:      "credentials",
	}
}

// Authentication & Authorization Error Type Checkers
func IsMissingSessionError(err error) bool {
	return errors.Is(err, ErrMissingSession)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
