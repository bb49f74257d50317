package persist

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "blobs.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Store(ctx, "k", []byte("payload")))
	b, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
}

func TestSQLiteStoreInsertOrIgnore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "blobs.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Store(ctx, "k", []byte("first")))
	require.NoError(t, store.Store(ctx, "k", []byte("second")))

	b, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}

func TestSQLiteStoreLoadMissing(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "blobs.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(ctx, "missing")
	assert.Error(t, err)
}
