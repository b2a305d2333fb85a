// Package apperr defines the expected failure kinds shared by the services.
// Services wrap a kind with a reason ("%w: reason"); handlers map the kind to
// an HTTP status with errors.Is.
package apperr

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("duplicate")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
)
