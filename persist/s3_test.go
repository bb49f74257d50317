package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrhy/fragmap/persist/s3test"
)

func TestS3StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	client, bucket, closer := s3test.Client()
	defer closer()

	store := NewS3Store(client, bucket, "fragmap/")
	require.NoError(t, store.Store(ctx, "k", []byte("payload")))

	b, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
}

func TestS3StoreSkipsKnownWrites(t *testing.T) {
	ctx := context.Background()
	client, bucket, closer := s3test.Client()
	defer closer()

	store := NewS3Store(client, bucket, "fragmap/")
	require.NoError(t, store.Store(ctx, "k", []byte("first")))
	require.NoError(t, store.Store(ctx, "k", []byte("second")))

	b, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}
