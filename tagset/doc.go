// Package tagset turns tag strings into fixed-width bitsets so that one
// slide can be scored against thousands of candidates in a single pass.
//
// A Universe is the sorted set of every tag observed in a working
// collection. It is derived state: build it once per optimization pass and
// hand it to whoever needs it. Each photo maps to a Set with one bit per
// universe tag, and a Batch packs many Sets row-major into one []uint64.
//
// Batch.Score(v) evaluates, for every row a,
//
//	min(popcount(v & a), popcount(v &^ a), popcount(a &^ v))
//
// which equals photo.Score for tags inside the universe.
//
// Complexity: building a Set is O(t·log t) for t tags; every batched
// reduction is O(rows·words) with words = ⌈|universe|/64⌉.
package tagset
