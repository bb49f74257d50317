package fragmap

import "iter"

// pair is one materialized key/value ready to be handed out by a
// Cursor.
type pair[K comparable, V any] struct {
	key K
	val V
}

// Cursor is a pull-style, single-pass iterator over a map's absolute
// value at the moment the cursor was created. It walks the leaf, then
// each ancestor in turn, suppressing any key already seen at a nearer
// fragment (a nearer entry shadows a farther one; a nearer tombstone
// hides a farther entry from ever being yielded) -- the same
// leaf-to-root precedence At and Contains use, just materialized once
// up front instead of resolved per key.
//
// A Cursor does not observe writes made through the Map after it was
// obtained; get a fresh one via Begin/Lookup if the map has since
// changed underneath it.
type Cursor[K comparable, V any] struct {
	items []pair[K, V]
	pos   int
}

// Begin returns a cursor positioned before the map's first entry.
// Advance it with Next before reading Key/Value.
func (m *Map[K, V]) Begin() *Cursor[K, V] {
	return &Cursor[K, V]{items: snapshot(m.leaf), pos: -1}
}

// End returns a cursor that is already exhausted, mirroring the
// sentinel end-of-range value idiomatic C++ containers use, for
// callers that want an explicit "no more entries" handle to compare
// against instead of relying on Next's return value.
func (m *Map[K, V]) End() *Cursor[K, V] {
	items := snapshot(m.leaf)
	return &Cursor[K, V]{items: items, pos: len(items)}
}

// Lookup returns a cursor positioned exactly at k, or the end cursor
// (same as End()) if k is absent -- never nil, so calling Live or Next
// on the result is safe even when k turns out to be missing.
// Advancing the returned cursor moves past k on to the rest of the
// map's entries in the same leaf-to-root order Begin uses.
func (m *Map[K, V]) Lookup(k K) *Cursor[K, V] {
	items := snapshot(m.leaf)
	for i, p := range items {
		if p.key == k {
			return &Cursor[K, V]{items: items, pos: i}
		}
	}
	return &Cursor[K, V]{items: items, pos: len(items)}
}

// snapshot walks leaf-to-root once, deduplicating by key, and returns
// the resulting entries. Grounded on the seen-set Range walk used to
// flatten a stacked scope into one map.
func snapshot[K comparable, V any](leaf *fragment[K, V]) []pair[K, V] {
	seen := make(map[K]struct{}, leaf.size)
	items := make([]pair[K, V], 0, leaf.size)
	for f := leaf; f != nil; f = f.parent {
		f.tomb.Range(func(k K, _ struct{}) bool {
			seen[k] = struct{}{}
			return true
		})
		f.entries.Range(func(k K, v V) bool {
			if _, dup := seen[k]; dup {
				return true
			}
			seen[k] = struct{}{}
			items = append(items, pair[K, V]{key: k, val: v})
			return true
		})
	}
	return items
}

// Next advances the cursor and reports whether a new entry became
// current. Call it before the first Key/Value read.
func (c *Cursor[K, V]) Next() bool {
	if c.pos+1 >= len(c.items) {
		c.pos = len(c.items)
		return false
	}
	c.pos++
	return true
}

// Live reports whether the cursor is currently positioned on an entry.
func (c *Cursor[K, V]) Live() bool {
	return c.pos >= 0 && c.pos < len(c.items)
}

// Key returns the current entry's key. Panics if the cursor is not
// Live, same as dereferencing an end iterator would misbehave in the
// container this was translated from.
func (c *Cursor[K, V]) Key() K { return c.items[c.pos].key }

// Value returns the current entry's value.
func (c *Cursor[K, V]) Value() V { return c.items[c.pos].val }

// Equal reports whether two cursors sit at the same position in
// snapshots of the same length, the closest Go equivalent to comparing
// C++ iterators for equality (most commonly against End()). It does
// not check that both cursors come from the same snapshot or map.
func (c *Cursor[K, V]) Equal(o *Cursor[K, V]) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.pos == o.pos && len(c.items) == len(o.items)
}

// MoveCursor moves the value the cursor is currently positioned on,
// with the same uniqueness rule as Move: the value is moved out only
// if the leaf is uniquely owned and the entry is locally resident,
// otherwise it's copied. A Cursor is a read-only snapshot rather than
// a live position inside the fragment chain, so this is sugar over
// Move(c.Key()) rather than a distinct traversal -- there is no
// separate "cursor's backing fragment" to move from once the snapshot
// has been taken. c must be Live.
func (m *Map[K, V]) MoveCursor(c *Cursor[K, V]) (V, error) {
	return m.Move(c.Key())
}

// MoveOnlyCursor is MoveCursor without ever falling back to a copy,
// mirroring MoveOnly's relationship to Move. c must be Live.
func (m *Map[K, V]) MoveOnlyCursor(c *Cursor[K, V]) (V, bool, error) {
	return m.MoveOnly(c.Key())
}

// All returns a range-over-func iterator over the map's absolute
// value, for use with a plain "for k, v := range m.All()" loop.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	items := snapshot(m.leaf)
	return func(yield func(K, V) bool) {
		for _, p := range items {
			if !yield(p.key, p.val) {
				return
			}
		}
	}
}
