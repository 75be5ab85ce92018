package service

import "errors"

var (
	ErrNotConfigured   = errors.New("session storage is not configured")
	ErrUnauthenticated = errors.New("not signed in")
	ErrSessionExpired  = errors.New("session expired or revoked")

	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrPostNotFound   = errors.New("post not found")
	ErrForbidden      = errors.New("forbidden by service")
	ErrRateLimited    = errors.New("rate limited by service")
	ErrServiceFailure = errors.New("service failure")

	ErrWrongCollection  = errors.New("record belongs to a different collection")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)
