package client

import "errors"

// Error kinds surfaced by the API client. Callers match with errors.Is;
// the distinctions matter for UI messaging (and for any retry policy
// layered on top: ErrUnavailable is retryable, the 4xx kinds are not).
var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrDecode       = errors.New("malformed response")
)
