package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	store, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestLocalStorage_SaveGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := newLocal(t)
	ctx := context.Background()

	err := store.Save(ctx, "uploads/thread-1.jpg", strings.NewReader("payload"), "image/jpeg")
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "uploads/thread-1.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, "uploads/thread-1.jpg")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	t.Parallel()

	store := newLocal(t)
	ctx := context.Background()

	assert.NoError(t, store.Delete(ctx, "uploads/never-written.jpg"))

	require.NoError(t, store.Save(ctx, "uploads/once.jpg", strings.NewReader("x"), "image/jpeg"))
	require.NoError(t, store.Delete(ctx, "uploads/once.jpg"))

	exists, err := store.Exists(ctx, "uploads/once.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting twice is fine.
	assert.NoError(t, store.Delete(ctx, "uploads/once.jpg"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := newLocal(t)
	url, err := store.GetURL(ctx, "uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a.png", url)

	withBase, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com"})
	require.NoError(t, err)
	url, err = withBase.GetURL(ctx, "uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/a.png", url)
}
