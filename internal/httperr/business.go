package httperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a failure whose Message is safe to show to clients. Err keeps
// the underlying cause for server-side logs only.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrValidation(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func ErrConflict(message string) error {
	return &AppError{Kind: KindConflict, Message: message}
}

func ErrAuth(message string) error {
	return &AppError{Kind: KindAuth, Message: message}
}

func ErrNotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ErrInternal(message string, cause error) error {
	return &AppError{Kind: KindInternal, Message: message, Err: cause}
}

func IsKind(err error, kind Kind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}
