package storage

import "context"

// Store is the abstract async key/value interface the core persists state
// through. Values are opaque strings; callers that need structure (JSON
// cursors, lists) encode/decode at their own layer, except for lists of
// strings, which the list helpers below store directly.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)

	// AppendList appends item to the list stored under key, creating it if
	// absent.
	AppendList(ctx context.Context, key, item string) error

	// GetList returns the list stored under key, or an empty slice if
	// absent.
	GetList(ctx context.Context, key string) ([]string, error)
}
