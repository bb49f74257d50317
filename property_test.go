package fragmap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCopyIsolationProperty exercises the central guarantee this
// package exists for: after Copy, a write (an insert-or-assign or an
// erase) applied to the copy never becomes visible through the
// original. It also checks that Size matches the number of live
// entries and that Detach leaves the absolute value unchanged.
func TestCopyIsolationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	keyGen := gen.OneConstOf("a", "b", "c", "d", "e")
	valGen := gen.IntRange(0, 1000)
	boolGen := gen.Bool()

	properties.Property("writes after Copy don't cross handles", prop.ForAll(
		func(baseKeys []string, baseVals []int, key string, val int, insertNotErase bool) bool {
			m1 := New[string, int]()
			n := len(baseKeys)
			if len(baseVals) < n {
				n = len(baseVals)
			}
			for i := 0; i < n; i++ {
				m1.InsertOrAssign(baseKeys[i], baseVals[i])
			}
			before1 := snapshotMapForTest(&m1)

			m2 := m1.Copy()

			if insertNotErase {
				m2.InsertOrAssign(key, val)
			} else {
				m2.Erase(key)
			}

			after1 := snapshotMapForTest(&m1)
			return mapsEqual(before1, after1)
		},
		gen.SliceOf(keyGen),
		gen.SliceOf(valGen),
		keyGen,
		valGen,
		boolGen,
	))

	properties.Property("Size matches the number of live entries", prop.ForAll(
		func(keys []string, vals []int) bool {
			m := New[string, int]()
			n := len(keys)
			if len(vals) < n {
				n = len(vals)
			}
			for i := 0; i < n; i++ {
				m.InsertOrAssign(keys[i], vals[i])
			}
			return m.Size() == len(snapshotMapForTest(&m))
		},
		gen.SliceOf(keyGen),
		gen.SliceOf(valGen),
	))

	properties.Property("Detach never changes the absolute value", prop.ForAll(
		func(keys []string, vals []int) bool {
			m1 := New[string, int]()
			n := len(keys)
			if len(vals) < n {
				n = len(vals)
			}
			for i := 0; i < n; i++ {
				m1.InsertOrAssign(keys[i], vals[i])
			}
			m2 := m1.Copy()
			before := snapshotMapForTest(&m2)
			m2.Detach()
			after := snapshotMapForTest(&m2)
			return mapsEqual(before, after)
		},
		gen.SliceOf(keyGen),
		gen.SliceOf(valGen),
	))

	properties.TestingRun(t)
}

func snapshotMapForTest[K comparable, V any](m *Map[K, V]) map[K]V {
	out := map[K]V{}
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

func mapsEqual[K comparable, V comparable](a, b map[K]V) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
