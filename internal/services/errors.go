package services

import "errors"

// Error taxonomy surfaced by the rule layer. Handlers map these to HTTP
// statuses with errors.Is; wrapped messages carry the operation detail.
var (
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
)
