package fragmap

import (
	"errors"

	"github.com/reusee/e5"
)

// ErrKeyNotFound is the sole error kind the core surfaces, returned by
// At and by Move/MoveOnly when the key is absent from the map's
// absolute value. Check with errors.Is; the concrete error additionally
// carries the offending key via github.com/reusee/e5.
var ErrKeyNotFound = errors.New("fragmap: key not found")

var we = e5.Wrap

// keyNotFound decorates ErrKeyNotFound with the key that was looked up,
// so callers debugging a failing At/Move see which key missed without
// needing to log it themselves at the call site.
func keyNotFound[K any](k K) error {
	return we.With(e5.Info("key: %v", k))(ErrKeyNotFound)
}
