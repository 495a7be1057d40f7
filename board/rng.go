package board

import "math/rand"

// RNG is a thin, explicitly-seeded wrapper around math/rand.Rand. The
// solver itself never touches randomness; only this board collaborator
// needs one, and it never reaches for the package-level math/rand
// functions, keeping every board's mine layout reproducible from its
// seed alone.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG returns an RNG seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this RNG was constructed with.
func (g *RNG) Seed() int64 {
	return g.seed
}

// Sample returns k distinct indices drawn from [0, n) without
// replacement, via a partial Fisher-Yates shuffle — O(n) time and space,
// avoiding rejection sampling when k is close to n (as it can be on
// small, dense boards).
func (g *RNG) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
