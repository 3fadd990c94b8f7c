package tagset

import "math/bits"

// Set is a fixed-width bitset over a Universe.
type Set []uint64

// Count returns the number of tags in s.
func (s Set) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Has reports whether bit i is set.
func (s Set) Has(i int) bool {
	return s[i>>6]&(1<<(uint(i)&63)) != 0
}

// AndCount returns |a ∩ b|.
func AndCount(a, b Set) int {
	n := 0
	for k := range a {
		n += bits.OnesCount64(a[k] & b[k])
	}
	return n
}

// AndNotCount returns |a \ b|.
func AndNotCount(a, b Set) int {
	n := 0
	for k := range a {
		n += bits.OnesCount64(a[k] &^ b[k])
	}
	return n
}

// OrCount returns |a ∪ b|.
func OrCount(a, b Set) int {
	n := 0
	for k := range a {
		n += bits.OnesCount64(a[k] | b[k])
	}
	return n
}

// Score returns min(|a ∩ b|, |a \ b|, |b \ a|).
func Score(a, b Set) int {
	return min(AndCount(a, b), AndNotCount(a, b), AndNotCount(b, a))
}
