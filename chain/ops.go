package chain

import (
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
)

// Stitch tries to join a and b end to end. Junctions are tested in this
// order: a.tail–b.head, a.tail–b.tail, a.head–b.head, a.head–b.tail; the
// first one scoring at least th wins and a is always placed first (reversed
// when its head is the joining end).
func Stitch(a, b Chain, th int, cache *photo.Cache) Result {
	if len(a) == 0 || len(b) == 0 {
		return Result{}
	}
	switch {
	case cache.Score(a.Tail(), b.Head()) >= th:
		return merged(Concat(a, b))
	case cache.Score(a.Tail(), b.Tail()) >= th:
		return merged(Concat(a, b.Reversed()))
	case cache.Score(a.Head(), b.Head()) >= th:
		return merged(Concat(a.Reversed(), b))
	case cache.Score(a.Head(), b.Tail()) >= th:
		return merged(Concat(a.Reversed(), b.Reversed()))
	}
	return Result{}
}

// Insert tries to splice a, as is or reversed, into the first inner
// junction of b where both new junctions score at least th.
func Insert(a, b Chain, th int, cache *photo.Cache) Result {
	if len(a) == 0 || len(b) <= 1 {
		return Result{}
	}
	for i := 1; i < len(b); i++ {
		left, right := b[i-1], b[i]
		if cache.Score(left, a.Head()) >= th && cache.Score(a.Tail(), right) >= th {
			return merged(Concat(b[:i], a, b[i:]))
		}
		if cache.Score(left, a.Tail()) >= th && cache.Score(a.Head(), right) >= th {
			return merged(Concat(b[:i], a.Reversed(), b[i:]))
		}
	}
	return Result{}
}

// Shuffle walks the inner junctions of b. At each junction whose left side
// scores at least th against an end of a, it flips a coin with probability
// p; on success a is grafted after b's prefix and b's suffix becomes the
// second chain:
//
//	A = b[:i] + a (or a reversed),  B = b[i:]
//
// Only the grafted junction is tested, so both results stay perfect.
func Shuffle(a, b Chain, th int, p float64, r rng.Source, cache *photo.Cache) Swap {
	if len(a) == 0 || len(b) <= 1 || p == 0 {
		return Swap{}
	}
	for i := 1; i < len(b); i++ {
		left := b[i-1]
		if cache.Score(left, a.Head()) >= th && r.Float64() < p {
			return Swap{Applied: true, A: Concat(b[:i], a), B: Concat(b[i:])}
		}
		if cache.Score(left, a.Tail()) >= th && r.Float64() < p {
			return Swap{Applied: true, A: Concat(b[:i], a.Reversed()), B: Concat(b[i:])}
		}
	}
	return Swap{}
}

// PartialReverse scans c from position 2 for a photo scoring at least th
// against the head; at each such position it flips a coin with
// probability p and, on success, reverses the prefix before it. The old
// head then sits next to the matching photo, so perfection is kept.
func PartialReverse(c Chain, th int, p float64, r rng.Source) Chain {
	if len(c) <= 2 || p == 0 {
		return c
	}
	head := c.Head()
	for i := 2; i < len(c); i++ {
		if photo.Score(head, c[i]) >= th && r.Float64() < p {
			return Concat(c[:i].Reversed(), c[i:])
		}
	}
	return c
}
