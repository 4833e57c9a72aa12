// Package storage defines the abstract asynchronous key/value interface the
// core persists state through (mnemonic, display name, namespace cursors),
// plus an in-memory implementation and a JSON-file-backed implementation
// with serialized writes, per spec §4.F.
package storage
