package errs

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error kinds surfaced by the core. Callers match them with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrParse            = errors.New("malformed stored payload")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// Validationf returns an ErrValidation carrying a formatted reason.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Parsef returns an ErrParse carrying a formatted reason.
func Parsef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// Classified reports whether err already carries one of the error kinds.
func Classified(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrStoreUnavailable)
}

// FromStore classifies an error returned by the record store. Missing rows
// become ErrNotFound, classified errors pass through untouched and anything
// else is reported as ErrStoreUnavailable.
func FromStore(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case Classified(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
}

// ErrStatusMap maps each error kind to the HTTP status it is reported with.
var ErrStatusMap = map[error]int{
	ErrNotFound:         http.StatusNotFound,
	ErrParse:            http.StatusInternalServerError,
	ErrValidation:       http.StatusBadRequest,
	ErrStoreUnavailable: http.StatusServiceUnavailable,
}

// HTTPStatus returns the status for err, or 500 when err has no known kind.
func HTTPStatus(err error) int {
	for kind, status := range ErrStatusMap {
		if errors.Is(err, kind) {
			return status
		}
	}
	return http.StatusInternalServerError
}
