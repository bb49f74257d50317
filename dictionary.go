package fragmap

import "github.com/dolthub/swiss"

// Dictionary is the external mapping contract a fragment's local delta
// is stored in: amortized O(1) insert/lookup/delete, presence checks,
// and unordered enumeration. No iterator stability is required or
// exposed across mutations, matching the corresponding external
// collaborator described for the underlying dictionary.
type Dictionary[K comparable, V any] interface {
	Get(k K) (V, bool)
	Put(k K, v V)
	Delete(k K)
	Len() int
	// Range calls f for every entry until f returns false or entries
	// are exhausted.
	Range(f func(k K, v V) bool)
}

// swissDict backs the default Dictionary with a SwissTable, in place of
// a bare Go map, for both a fragment's entries and its tombstone set.
type swissDict[K comparable, V any] struct {
	m *swiss.Map[K, V]
}

func newSwissDict[K comparable, V any]() Dictionary[K, V] {
	return &swissDict[K, V]{m: swiss.NewMap[K, V](8)}
}

func (d *swissDict[K, V]) Get(k K) (V, bool) { return d.m.Get(k) }
func (d *swissDict[K, V]) Put(k K, v V)      { d.m.Put(k, v) }
func (d *swissDict[K, V]) Delete(k K)        { d.m.Delete(k) }
func (d *swissDict[K, V]) Len() int          { return int(d.m.Count()) }

func (d *swissDict[K, V]) Range(f func(K, V) bool) {
	d.m.Iter(func(k K, v V) (stop bool) {
		return !f(k, v)
	})
}
