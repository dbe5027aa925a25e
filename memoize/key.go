package memoize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key derives a canonical cache key from an argument sequence.
//
// Each argument contributes its dynamic type (%T) and its JSON encoding, so
// equal sequences always map to equal keys while order and type both
// distinguish: (1, 2) ≠ (2, 1), and int 1 ≠ float64 1 ≠ "1". The JSON
// encoder terminates every value with a newline, which doubles as the
// argument delimiter; JSON string escaping guarantees no stored value can
// forge that delimiter.
//
// Arguments the JSON encoder rejects (channels, functions, cyclic values)
// yield an error; callers treat such sequences as uncacheable.
func Key(args ...any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	for _, a := range args {
		fmt.Fprintf(&b, "%T|", a)
		if err := enc.Encode(a); err != nil {
			return "", fmt.Errorf("memoize: argument not encodable: %w", err)
		}
	}
	return b.String(), nil
}
