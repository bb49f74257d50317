package persist

import "github.com/sugawarayuuta/sonnet"

// wireEntry is the on-the-wire shape of an Entry: a struct instead of
// a two-element tuple so the JSON stays self-describing.
type wireEntry[K comparable, V any] struct {
	Key   K
	Value V
}

// JSONCodec marshals snapshots as a JSON array of key/value objects,
// using sonnet in place of encoding/json for the decode/encode hot
// path. The zero value is ready to use.
type JSONCodec[K comparable, V any] struct{}

func (JSONCodec[K, V]) Marshal(entries []Entry[K, V]) ([]byte, error) {
	wire := make([]wireEntry[K, V], len(entries))
	for i, e := range entries {
		wire[i] = wireEntry[K, V]{Key: e.Key, Value: e.Value}
	}
	return sonnet.Marshal(wire)
}

func (JSONCodec[K, V]) Unmarshal(b []byte) ([]Entry[K, V], error) {
	var wire []wireEntry[K, V]
	if err := sonnet.Unmarshal(b, &wire); err != nil {
		return nil, err
	}
	entries := make([]Entry[K, V], len(wire))
	for i, w := range wire {
		entries[i] = Entry[K, V]{Key: w.Key, Value: w.Value}
	}
	return entries, nil
}
