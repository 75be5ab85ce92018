package store

import "errors"

// Sentinel errors returned by session storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned by Load when no session is persisted or
	// the session file cannot be read. Both mean "not signed in".
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyStorageDir is returned when a storage is created without a
	// directory.
	ErrEmptyStorageDir = errors.New("empty storage directory")
)
