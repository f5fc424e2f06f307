package errs

import "errors"

// Cross-layer sentinel errors shared by infra and usecase packages
var (
	// Booking backend errors
	ErrUpstreamUnavailable = errors.New("booking backend unavailable")
	ErrUpstreamRejected    = errors.New("booking backend rejected request")
	ErrUpstreamDecode      = errors.New("booking backend response could not be decoded")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)
