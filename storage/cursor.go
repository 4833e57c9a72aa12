package storage

import (
	"context"
	"fmt"
)

func cursorKey(namespace int) string {
	return fmt.Sprintf("last_hash_%d", namespace)
}

// CursorStore reads and advances per-namespace retrieval cursors
// (last_hash_{namespace}) through a Store, per spec §3's NamespaceCursor.
type CursorStore struct {
	store Store
}

// NewCursorStore wraps store for namespace cursor access.
func NewCursorStore(store Store) *CursorStore {
	return &CursorStore{store: store}
}

// LastHash returns the last seen hash for namespace, or "" if none.
func (c *CursorStore) LastHash(ctx context.Context, namespace int) (string, error) {
	v, ok, err := c.store.Get(ctx, cursorKey(namespace))
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

// Advance persists hash as the last seen hash for namespace. Callers are
// responsible for only calling this with hashes observed in server-assigned
// order, per the monotonicity invariant.
func (c *CursorStore) Advance(ctx context.Context, namespace int, hash string) error {
	return c.store.Set(ctx, cursorKey(namespace), hash)
}

// Snapshot returns the cursor of each namespace in namespaces as
// namespace->hash, with "" for a namespace that has no cursor yet.
func (c *CursorStore) Snapshot(ctx context.Context, namespaces []int) (map[int]string, error) {
	out := make(map[int]string, len(namespaces))
	for _, n := range namespaces {
		h, err := c.LastHash(ctx, n)
		if err != nil {
			return nil, err
		}
		out[n] = h
	}
	return out, nil
}
