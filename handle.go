package fragmap

import "iter"

// Map is a keyed associative handle backed by a fragment chain. The
// zero value is not usable; construct one with New, Collect, or
// FromMap. Copying a Map by plain assignment aliases the same mutable
// leaf and does not give the isolation guarantee this package exists
// for -- always duplicate a handle with Copy.
type Map[K comparable, V any] struct {
	leaf *fragment[K, V]
}

// New returns an empty map.
func New[K comparable, V any]() Map[K, V] {
	return Map[K, V]{leaf: newRootFragment[K, V]()}
}

// Collect builds a map from a sequence of key/value pairs, in the style
// of Go's slices.Collect/maps.Collect. Later pairs win on duplicate
// keys, matching InsertOrAssign.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	m := New[K, V]()
	for k, v := range seq {
		m.InsertOrAssign(k, v)
	}
	return m
}

// FromMap builds a map from the entries of a builtin Go map.
func FromMap[K comparable, V any](src map[K]V) Map[K, V] {
	m := New[K, V]()
	for k, v := range src {
		m.InsertOrAssign(k, v)
	}
	return m
}

// Copy returns a second handle over the same absolute value in O(1).
// After Copy, a write through either handle branches a fresh leaf
// before mutating, so subsequent writes on m and the returned Map are
// isolated from each other. Read this doc comment twice: obtaining a
// second handle any other way (struct assignment, passing by value and
// mutating the callee's copy) silently defeats that isolation, since Go
// cannot intercept a plain copy the way a C++ copy constructor would.
func (m *Map[K, V]) Copy() Map[K, V] {
	m.leaf.shared.Store(true)
	return Map[K, V]{leaf: m.leaf}
}

// ensureUnique is the uniqueness-triggered branch every mutator shares:
// if the leaf isn't marked shared, it's safe to mutate in place;
// otherwise a fresh, exclusively-owned leaf is allocated with the old
// leaf as its parent, and the handle is retargeted to it. The old
// leaf's other sharers keep seeing the old absolute value unchanged.
func (m *Map[K, V]) ensureUnique() *fragment[K, V] {
	leaf := m.leaf
	if !leaf.shared.Load() {
		return leaf
	}
	fresh := branchFragment(leaf)
	m.leaf = fresh
	return fresh
}

// Contains reports whether k is present in the map's absolute value.
func (m *Map[K, V]) Contains(k K) bool {
	for f := m.leaf; f != nil; f = f.parent {
		if _, ok := f.entries.Get(k); ok {
			return true
		}
		if _, ok := f.tomb.Get(k); ok {
			return false
		}
	}
	return false
}

// At returns the value for k, or ErrKeyNotFound if k is absent.
func (m *Map[K, V]) At(k K) (V, error) {
	for f := m.leaf; f != nil; f = f.parent {
		if v, ok := f.entries.Get(k); ok {
			return v, nil
		}
		if _, ok := f.tomb.Get(k); ok {
			var zero V
			return zero, keyNotFound(k)
		}
	}
	var zero V
	return zero, keyNotFound(k)
}

// Size returns the number of entries in the map's absolute value. O(1).
func (m *Map[K, V]) Size() int { return m.leaf.size }

// Empty reports whether Size() == 0.
func (m *Map[K, V]) Empty() bool { return m.leaf.size == 0 }

// Depth returns the number of strict ancestors of the leaf. O(depth);
// informational, used to decide when to call Detach.
func (m *Map[K, V]) Depth() int {
	d := 0
	for f := m.leaf.parent; f != nil; f = f.parent {
		d++
	}
	return d
}

// IsDetached reports whether the leaf has no parent.
func (m *Map[K, V]) IsDetached() bool { return m.leaf.parent == nil }

// Insert adds (k, v) if k is absent, and reports whether it did so. A
// key already present -- even with an identical value -- is a no-op.
func (m *Map[K, V]) Insert(k K, v V) bool {
	if m.Contains(k) {
		return false
	}
	leaf := m.ensureUnique()
	leaf.tomb.Delete(k)
	leaf.entries.Put(k, v)
	leaf.size++
	return true
}

// InsertOrAssign sets k to v, inserting if absent and overwriting the
// leaf's own entry otherwise. It never mutates an ancestor: writing a
// key that's only live via the parent chain shadows it with a new leaf
// entry rather than reaching up to change the ancestor's value.
func (m *Map[K, V]) InsertOrAssign(k K, v V) {
	existed := m.Contains(k)
	leaf := m.ensureUnique()
	if !existed {
		leaf.size++
	}
	leaf.tomb.Delete(k)
	leaf.entries.Put(k, v)
}

// Put is a non-standard alias for InsertOrAssign, carried over from the
// source this package's semantics were distilled from.
func (m *Map[K, V]) Put(k K, v V) { m.InsertOrAssign(k, v) }

// Emplace has Insert's semantics, constructing the value in place from
// build only when k is actually absent, so callers can skip building a
// value that would just be discarded.
func (m *Map[K, V]) Emplace(k K, build func() V) bool {
	if m.Contains(k) {
		return false
	}
	leaf := m.ensureUnique()
	leaf.tomb.Delete(k)
	leaf.entries.Put(k, build())
	leaf.size++
	return true
}

// Erase removes k and reports whether it was present. If k remains
// visible through the parent chain after the local removal, a
// tombstone is recorded so the ancestor's binding stays masked.
func (m *Map[K, V]) Erase(k K) bool {
	if !m.Contains(k) {
		return false
	}
	leaf := m.ensureUnique()
	leaf.entries.Delete(k)
	if visibleInAncestors(leaf, k) {
		leaf.tomb.Put(k, struct{}{})
	}
	leaf.size--
	return true
}

// Clear discards the current leaf and installs a fresh empty root. The
// old leaf, which may still be shared with other handles, is left
// untouched -- Clear never branches.
func (m *Map[K, V]) Clear() {
	m.leaf = newRootFragment[K, V]()
}

// Move extracts the value for k, failing with ErrKeyNotFound if k is
// absent. When the leaf is uniquely owned and k is locally resident,
// the stored value is moved out (the slot is left holding the zero
// value; the key still reports present to Contains). Otherwise the
// value is copied and the source is left untouched. This is meant for
// read-modify-write loops that would otherwise pay for a value copy
// they don't need: fetch with Move, mutate, write back with
// InsertOrAssign.
func (m *Map[K, V]) Move(k K) (V, error) {
	leaf := m.leaf
	if v, ok := leaf.entries.Get(k); ok {
		if !leaf.shared.Load() {
			var zero V
			leaf.entries.Put(k, zero)
		}
		return v, nil
	}
	if _, ok := leaf.tomb.Get(k); ok {
		var zero V
		return zero, keyNotFound(k)
	}
	for f := leaf.parent; f != nil; f = f.parent {
		if v, ok := f.entries.Get(k); ok {
			return v, nil
		}
		if _, ok := f.tomb.Get(k); ok {
			var zero V
			return zero, keyNotFound(k)
		}
	}
	var zero V
	return zero, keyNotFound(k)
}

// MoveOnly is Move without ever falling back to a copy: it returns
// ok == true only when the leaf is uniquely owned and k is locally
// resident. Otherwise ok is false, and err distinguishes why: err
// wrapping ErrKeyNotFound means k is genuinely absent; err == nil means
// k exists but avoiding the copy wasn't possible, so no value is
// returned at all (a caller that can afford the copy should use Move
// instead).
func (m *Map[K, V]) MoveOnly(k K) (v V, ok bool, err error) {
	if !m.Contains(k) {
		return v, false, keyNotFound(k)
	}
	leaf := m.leaf
	if val, found := leaf.entries.Get(k); found && !leaf.shared.Load() {
		var zero V
		leaf.entries.Put(k, zero)
		return val, true, nil
	}
	return v, false, nil
}

// Detach materializes the leaf's absolute value into its own entries,
// clears its tombstones, and drops its parent link, bounding future
// lookup/iteration cost. It returns false, as a no-op, if the leaf is
// already detached. Cost is proportional to the total size of the
// chain being collapsed.
func (m *Map[K, V]) Detach() bool {
	if m.leaf.parent == nil {
		return false
	}
	leaf := m.ensureUnique()
	for anc := leaf.parent; anc != nil; anc = anc.parent {
		anc.entries.Range(func(k K, v V) bool {
			if _, tombstoned := leaf.tomb.Get(k); tombstoned {
				return true
			}
			if _, exists := leaf.entries.Get(k); !exists {
				leaf.entries.Put(k, v)
			}
			return true
		})
		anc.tomb.Range(func(k K, _ struct{}) bool {
			leaf.tomb.Put(k, struct{}{})
			return true
		})
	}
	leaf.tomb = newSwissDict[K, struct{}]()
	leaf.parent = nil
	return true
}
