package errs

import "errors"

// Sentinel errors shared across the client, usecase and handler layers.
// Callers dispatch with errors.Is; the concrete error usually carries
// more context (see client.APIError).
var (
	// Backend response classes
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("time range already taken")
	ErrValidation      = errors.New("validation failed")
	ErrServer          = errors.New("server error")

	// Transport errors
	ErrNetwork = errors.New("network error")

	// Local precondition errors
	ErrNoSelection     = errors.New("no slots selected")
	ErrSlotUnavailable = errors.New("selection contains unavailable slots")
	ErrSuperseded      = errors.New("result superseded by a newer request")

	// Token handling
	ErrTokenResponse = errors.New("malformed token response")
)
