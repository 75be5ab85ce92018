package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStorage persists the exported session token.
type SessionStorage interface {
	// Load returns the persisted token. A missing or unreadable file yields
	// [ErrSessionNotFound].
	Load() (string, error)

	// Save overwrites the persisted token.
	Save(token string) error

	// Delete removes the persisted token. Deleting a missing token is not an
	// error.
	Delete() error

	// Dir returns the storage directory.
	Dir() string
}

// SessionStorageFactory opens the session storage rooted at dir.
type SessionStorageFactory func(dir string) (SessionStorage, error)
