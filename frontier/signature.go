package frontier

import (
	"sort"
	"strconv"
	"strings"
)

// Signature is the canonical, order-invariant fingerprint of a
// component, used as the enumeration cache key. Two components produce
// equal signatures iff they contain the same multiset of (scope, remaining)
// pairs under the ORIGINAL local indices of their enclosing frontier —
// variable relabeling is deliberately NOT normalized, so two
// structurally identical components from different frontiers may still
// miss the cache.
type Signature string

// ComputeSignature builds the canonical signature for comp: the
// constraints' (scope bits, remaining) pairs, sorted ascending by
// (bits, remaining), then folded into one comparable string.
func ComputeSignature(comp Component) Signature {
	type pair struct {
		bits      string
		remaining int
	}
	pairs := make([]pair, 0, len(comp.Constraints))
	for _, c := range comp.Constraints {
		bits := c.Scope.Bits()
		strBits := make([]string, len(bits))
		for i, b := range bits {
			strBits[i] = strconv.Itoa(b)
		}
		pairs = append(pairs, pair{bits: strings.Join(strBits, ","), remaining: c.Remaining})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].bits != pairs[j].bits {
			return pairs[i].bits < pairs[j].bits
		}
		return pairs[i].remaining < pairs[j].remaining
	})

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(p.bits)
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(p.remaining))
		b.WriteByte(';')
	}
	return Signature(b.String())
}
