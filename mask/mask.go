package mask

import "github.com/bits-and-blooms/bitset"

// wideThreshold is the first bit index that no longer fits in the native
// uint64 fast path; indices at or above it force the bitset-backed
// representation.
const wideThreshold = 64

// Set is a bitmask over local frontier-variable indices 0..U-1. The zero
// value is the empty set and is ready to use. Set is a value type for
// indices below wideThreshold (cheap to copy, cheap to compare); it
// switches to a pointer-held *bitset.BitSet once an index >= 64 is set,
// and from then on every copy of the Set shares (and mutates through)
// that same BitSet, matching the semantics of a reference-like wide
// integer.
type Set struct {
	small uint64
	wide  *bitset.BitSet
}

// FromBits builds a Set containing exactly the given indices.
func FromBits(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s.SetBit(i)
	}
	return s
}

// SetBit sets bit i, upgrading to the wide representation if needed.
func (s *Set) SetBit(i int) {
	if i < 0 {
		return
	}
	if s.wide != nil {
		s.wide.Set(uint(i))
		return
	}
	if i < wideThreshold {
		s.small |= uint64(1) << uint(i)
		return
	}
	// Upgrade: migrate the small bits into a fresh wide set, then set i.
	s.wide = bitset.New(uint(i) + 1)
	for b := 0; b < wideThreshold; b++ {
		if s.small&(uint64(1)<<uint(b)) != 0 {
			s.wide.Set(uint(b))
		}
	}
	s.small = 0
	s.wide.Set(uint(i))
}

// Test reports whether bit i is set.
func (s Set) Test(i int) bool {
	if i < 0 {
		return false
	}
	if s.wide != nil {
		return s.wide.Test(uint(i))
	}
	if i >= wideThreshold {
		return false
	}
	return s.small&(uint64(1)<<uint(i)) != 0
}

// IsZero reports whether no bit is set.
func (s Set) IsZero() bool {
	if s.wide != nil {
		return s.wide.None()
	}
	return s.small == 0
}

// Popcount returns the number of set bits.
func (s Set) Popcount() int {
	if s.wide != nil {
		return int(s.wide.Count())
	}
	count := 0
	for v := s.small; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// Bits returns the set bit indices in ascending order.
func (s Set) Bits() []int {
	var out []int
	if s.wide != nil {
		for i, ok := s.wide.NextSet(0); ok; i, ok = s.wide.NextSet(i + 1) {
			out = append(out, int(i))
		}
		return out
	}
	for v, i := s.small, 0; v != 0; v, i = v>>1, i+1 {
		if v&1 != 0 {
			out = append(out, i)
		}
	}
	return out
}

// Union returns the bitwise OR of s and other. It does not mutate
// either argument.
func (s Set) Union(other Set) Set {
	if s.wide == nil && other.wide == nil {
		return Set{small: s.small | other.small}
	}
	var out Set
	for _, i := range s.Bits() {
		out.SetBit(i)
	}
	for _, i := range other.Bits() {
		out.SetBit(i)
	}
	return out
}

// AndNot returns the bits set in s but not in other (s \ other).
func (s Set) AndNot(other Set) Set {
	if s.wide == nil && other.wide == nil {
		return Set{small: s.small &^ other.small}
	}
	var out Set
	for _, i := range s.Bits() {
		if !other.Test(i) {
			out.SetBit(i)
		}
	}
	return out
}

// Intersects reports whether s and other share at least one bit.
func (s Set) Intersects(other Set) bool {
	if s.wide == nil && other.wide == nil {
		return s.small&other.small != 0
	}
	small, big := s, other
	if small.Popcount() > big.Popcount() {
		small, big = big, small
	}
	for _, i := range small.Bits() {
		if big.Test(i) {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every bit set in s is also set in other.
func (s Set) IsSubsetOf(other Set) bool {
	if s.wide == nil && other.wide == nil {
		return s.small&other.small == s.small
	}
	for _, i := range s.Bits() {
		if !other.Test(i) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same bits.
func (s Set) Equal(other Set) bool {
	if s.wide == nil && other.wide == nil {
		return s.small == other.small
	}
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}
