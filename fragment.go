package fragmap

import "sync/atomic"

// fragment is the copy-on-write delta node: a local dictionary of
// inserts/overrides, a tombstone dictionary masking keys from the
// parent chain, and the cached absolute size of this fragment's value.
// Purely data; the Map handle and the Cursor are the only things that
// read or mutate it.
//
// A fragment is mutable only by the sole Map handle whose leaf it is.
// shared is flipped to true exactly once, by Map.Copy, and never
// cleared back to false -- see Map.ensureUnique for why that's safe.
type fragment[K comparable, V any] struct {
	parent  *fragment[K, V]
	entries Dictionary[K, V]
	tomb    Dictionary[K, struct{}]
	size    int
	shared  atomic.Bool
}

func newRootFragment[K comparable, V any]() *fragment[K, V] {
	return &fragment[K, V]{
		entries: newSwissDict[K, V](),
		tomb:    newSwissDict[K, struct{}](),
	}
}

// branchFragment allocates a new empty leaf whose parent is the given,
// now-shared, fragment. The size is inherited: a freshly branched leaf
// has no local entries or tombstones yet, so it must report the same
// size as its parent until a mutation adjusts it.
func branchFragment[K comparable, V any](parent *fragment[K, V]) *fragment[K, V] {
	return &fragment[K, V]{
		parent:  parent,
		entries: newSwissDict[K, V](),
		tomb:    newSwissDict[K, struct{}](),
		size:    parent.size,
	}
}

// visibleInAncestors reports whether k resolves to a live entry
// somewhere in f's ancestor chain (f itself excluded).
func visibleInAncestors[K comparable, V any](f *fragment[K, V], k K) bool {
	for a := f.parent; a != nil; a = a.parent {
		if _, ok := a.entries.Get(k); ok {
			return true
		}
		if _, ok := a.tomb.Get(k); ok {
			return false
		}
	}
	return false
}
