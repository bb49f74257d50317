// Package persist provides content-addressed blob storage for
// fragmap.Map snapshots, plus a handful of Store implementations
// (memory, file, S3, SQLite) and an LRU load cache decorator.
package persist

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/blake2b-simd"
	"github.com/reusee/e5"
)

// Store loads and stores opaque, content-addressed blobs by name. Store
// must be idempotent: storing the same name twice, with the same
// bytes, is a no-op the second time. Implementations backing shared
// storage (S3, a database) must tolerate concurrent callers racing to
// store the same content.
type Store interface {
	Store(ctx context.Context, name string, b []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// Codec marshals and unmarshals the key/value pairs of a snapshot. The
// zero value of JSONCodec is a ready-to-use JSON-backed codec.
type Codec[K comparable, V any] interface {
	Marshal(entries []Entry[K, V]) ([]byte, error)
	Unmarshal([]byte) ([]Entry[K, V], error)
}

// Entry is one key/value pair as seen by a Codec.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

var we = e5.Wrap

// ErrRootNotFound is returned by ResolveRoot when a RootID has no
// associated content hash in the given Store.
var ErrRootNotFound = fmt.Errorf("persist: root not found")

// contentHash names a blob by the blake2b-256 digest of its bytes,
// base64-encoded the same way jrhy/mast names its persisted nodes.
func contentHash(b []byte) string {
	sum := blake2b.Sum256(b)
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Snapshot marshals entries with codec, stores the result in store
// under its content hash, and returns that hash. Storing the same
// entries twice returns the same hash and performs at most one
// underlying write, since Store.Store is required to be idempotent.
func Snapshot[K comparable, V any](ctx context.Context, store Store, codec Codec[K, V], entries []Entry[K, V]) (string, error) {
	encoded, err := codec.Marshal(entries)
	if err != nil {
		return "", we.With(e5.Info("marshal snapshot"))(err)
	}
	hash := contentHash(encoded)
	if err := store.Store(ctx, hash, encoded); err != nil {
		return "", we.With(e5.Info("store snapshot %s", hash))(err)
	}
	return hash, nil
}

// Load fetches the blob named hash from store and decodes it with
// codec.
func Load[K comparable, V any](ctx context.Context, store Store, codec Codec[K, V], hash string) ([]Entry[K, V], error) {
	b, err := store.Load(ctx, hash)
	if err != nil {
		return nil, we.With(e5.Info("load snapshot %s", hash))(err)
	}
	entries, err := codec.Unmarshal(b)
	if err != nil {
		return nil, we.With(e5.Info("unmarshal snapshot %s", hash))(err)
	}
	return entries, nil
}

// RootID is a stable, opaque handle a caller can keep pointing at the
// current snapshot of a map, independent of that snapshot's content
// hash (which changes on every write). Callers typically store the
// (RootID -> content hash) association themselves, e.g. in a small key
// namespace of the same Store, and update it after every Snapshot.
type RootID string

// NewRootID mints a fresh, globally unique root identifier.
func NewRootID() RootID {
	return RootID(uuid.New().String())
}

func rootKey(id RootID) string {
	return "root/" + string(id)
}

// UpdateRoot records that id now points at hash.
func UpdateRoot(ctx context.Context, store Store, id RootID, hash string) error {
	if err := store.Store(ctx, rootKey(id), []byte(hash)); err != nil {
		return we.With(e5.Info("update root %s", id))(err)
	}
	return nil
}

// ResolveRoot returns the content hash id currently points at.
func ResolveRoot(ctx context.Context, store Store, id RootID) (string, error) {
	b, err := store.Load(ctx, rootKey(id))
	if err != nil {
		return "", we.With(e5.Info("resolve root %s", id))(ErrRootNotFound)
	}
	return string(b), nil
}
