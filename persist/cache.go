package persist

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
)

// Cached wraps a Store with an in-process ARC cache of loaded blobs,
// so repeated Load calls for the same content-addressed name (common
// when many snapshots share ancestors) don't repeatedly hit the
// underlying storage.
type Cached struct {
	inner Store
	cache *lru.ARCCache
}

// NewCached returns a Store that serves Load from an ARC cache of the
// given size before falling through to inner.
func NewCached(inner Store, size int) *Cached {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return &Cached{inner: inner, cache: cache}
}

func (c *Cached) Load(ctx context.Context, name string) ([]byte, error) {
	if v, ok := c.cache.Get(name); ok {
		return v.([]byte), nil
	}
	b, err := c.inner.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	c.cache.Add(name, b)
	return b, nil
}

func (c *Cached) Store(ctx context.Context, name string, b []byte) error {
	if c.cache.Contains(name) {
		return nil
	}
	if err := c.inner.Store(ctx, name, b); err != nil {
		return err
	}
	c.cache.Add(name, b)
	return nil
}
