package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	dir := t.TempDir()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(dir, "store.json")),
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "k", "v"))
			v, ok, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", v)

			has, err := s.Has(ctx, "k")
			require.NoError(t, err)
			assert.True(t, has)

			require.NoError(t, s.Delete(ctx, "k"))
			has, err = s.Has(ctx, "k")
			require.NoError(t, err)
			assert.False(t, has)
		})
	}
}

func TestStoreAppendGetList(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			list, err := s.GetList(ctx, "nope")
			require.NoError(t, err)
			assert.Empty(t, list)

			require.NoError(t, s.AppendList(ctx, "l", "a"))
			require.NoError(t, s.AppendList(ctx, "l", "b"))

			list, err = s.GetList(ctx, "l")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, list)
		})
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")
	ctx := context.Background()

	s1 := NewFileStore(path)
	require.NoError(t, s1.Set(ctx, "mnemonic", "one two three"))
	require.NoError(t, s1.AppendList(ctx, "events", "e1"))

	s2 := NewFileStore(path)
	v, ok, err := s2.Get(ctx, "mnemonic")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one two three", v)

	list, err := s2.GetList(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, list)
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "does-not-exist.json")
	s := NewFileStore(path)

	ctx := context.Background()
	_, ok, err := s.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := NewFileStore(path)
	ctx := context.Background()
	_, ok, err := s.Get(ctx, "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}
