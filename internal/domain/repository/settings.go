package repository

import "context"

// SettingsRepository is the synced key-value store holding registry state.
// Values are opaque serialized blobs.
type SettingsRepository interface {
	// Get returns the value stored under key.
	// Returns nil and no error if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value under key in a single write.
	Set(ctx context.Context, key string, value []byte) error

	// GetAll returns every stored key and value.
	GetAll(ctx context.Context) (map[string][]byte, error)
}
