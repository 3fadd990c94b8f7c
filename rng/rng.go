// Package rng holds the seeded random streams of the optimizer.
//
// Stages never touch the global math/rand source: each one is handed a
// Source, and parallel buckets each get their own stream from Derive.
// A *rand.Rand is not safe for concurrent use.
package rng

import "math/rand"

// fallbackSeed replaces a zero seed.
const fallbackSeed int64 = 1

// Source is the subset of *rand.Rand the optimizer draws from.
type Source interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
	Shuffle(n int, swap func(i, j int))
}

// New returns a generator seeded with seed, or with fallbackSeed when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}
	return rand.New(rand.NewSource(seed))
}

// splitmix64 is one output step of the SplitMix64 generator for state z.
func splitmix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}

// Derive returns the generator of stream id for the pass driven by base.
// It draws one value from base, so derivations must happen in a fixed order.
// A nil base derives from fallbackSeed.
func Derive(base Source, id uint64) *rand.Rand {
	parent := fallbackSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(int64(splitmix64(uint64(parent) ^ splitmix64(id)))))
}

// Choice returns one element of idx picked uniformly at random.
// idx must be non-empty.
func Choice(r Source, idx []int) int {
	return idx[r.Intn(len(idx))]
}

// ShuffleInts permutes a in place.
func ShuffleInts(r Source, a []int) {
	r.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}
