package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *LocalFileStore {
	t.Helper()
	store, err := NewLocalFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLocalFileStore_SaveAndPath(t *testing.T) {
	store := newStore(t)

	stored, size, err := store.Save(strings.NewReader("hello world"), "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(11), size)
	assert.True(t, strings.HasSuffix(stored, ".txt"))
	assert.NotContains(t, stored, "notes", "stored name must not reuse the client name")

	path, err := store.Path(stored)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestLocalFileStore_RejectsDisallowedType(t *testing.T) {
	store := newStore(t)

	_, _, err := store.Save(strings.NewReader("#!/bin/sh"), "evil.sh")
	assert.ErrorContains(t, err, "not allowed")
}

func TestLocalFileStore_RejectsEmptyFile(t *testing.T) {
	store := newStore(t)

	_, _, err := store.Save(strings.NewReader(""), "empty.pdf")
	assert.ErrorContains(t, err, "empty")
}

func TestLocalFileStore_PathRejectsTraversal(t *testing.T) {
	store := newStore(t)

	for _, name := range []string{"../secret.txt", "a/b.txt", `a\b.txt`, "..", ""} {
		_, err := store.Path(name)
		assert.Error(t, err, name)
	}
}

func TestLocalFileStore_Remove(t *testing.T) {
	store := newStore(t)

	stored, _, err := store.Save(strings.NewReader("bye"), "bye.txt")
	require.NoError(t, err)
	require.NoError(t, store.Remove(stored))

	_, err = store.Path(stored)
	assert.Error(t, err)
}

func TestLocalFileStore_UniqueStoredNames(t *testing.T) {
	store := newStore(t)

	a, _, err := store.Save(strings.NewReader("one"), "same.txt")
	require.NoError(t, err)
	b, _, err := store.Save(strings.NewReader("two"), "same.txt")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	entries, err := os.ReadDir(filepath.Dir(mustPath(t, store, a)))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func mustPath(t *testing.T, store *LocalFileStore, name string) string {
	t.Helper()
	p, err := store.Path(name)
	require.NoError(t, err)
	return p
}
