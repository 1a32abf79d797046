package usecase

import "errors"

// Error taxonomy shared by the handlers. Validation failures never reach the
// store; authorization failures stay generic so they cannot be used to probe
// for another owner's records.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrStore        = errors.New("store rejected the operation")
	ErrInternal     = errors.New("internal error")
)
