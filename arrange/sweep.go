package arrange

import (
	"github.com/katalvlaran/slideshow/chain"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
)

// slots is the working set of one sweep. A merged-away chain is marked dead
// and dropped once by compact when the sweep ends.
type slots struct {
	chains []chain.Chain
	dead   []bool
}

func newSlots(chains []chain.Chain) *slots {
	return &slots{
		chains: append([]chain.Chain(nil), chains...),
		dead:   make([]bool, len(chains)),
	}
}

func (s *slots) compact() []chain.Chain {
	out := s.chains[:0]
	for i, c := range s.chains {
		if !s.dead[i] {
			out = append(out, c)
		}
	}
	return out
}

// stitchAll tries Stitch on every unordered pair i<j. On success the
// result replaces j and i dies. Threshold 0 joins everything in one step.
func stitchAll(chains []chain.Chain, th int, cache *photo.Cache) []chain.Chain {
	if len(chains) <= 1 {
		return chains
	}
	if th == 0 {
		return []chain.Chain{chain.Concat(chains...)}
	}
	s := newSlots(chains)
	for i := range s.chains {
		for j := i + 1; j < len(s.chains); j++ {
			if s.dead[i] {
				break
			}
			if s.dead[j] {
				continue
			}
			if res := chain.Stitch(s.chains[i], s.chains[j], th, cache); res.Merged {
				s.dead[i] = true
				s.chains[j] = res.Chain
			}
		}
	}
	return s.compact()
}

// insertAll tries Insert on every ordered pair i≠j.
func insertAll(chains []chain.Chain, th int, cache *photo.Cache) []chain.Chain {
	if len(chains) <= 1 {
		return chains
	}
	s := newSlots(chains)
	for i := range s.chains {
		for j := range s.chains {
			if i == j || s.dead[j] {
				continue
			}
			if s.dead[i] {
				break
			}
			if res := chain.Insert(s.chains[i], s.chains[j], th, cache); res.Merged {
				s.dead[i] = true
				s.chains[j] = res.Chain
			}
		}
	}
	return s.compact()
}

// shuffleAll tries Shuffle on every ordered pair i≠j. The chain count never
// changes.
func shuffleAll(chains []chain.Chain, th int, p float64, r rng.Source, cache *photo.Cache) []chain.Chain {
	if len(chains) <= 1 || p == 0 {
		return chains
	}
	out := append([]chain.Chain(nil), chains...)
	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			if sw := chain.Shuffle(out[i], out[j], th, p, r, cache); sw.Applied {
				out[i], out[j] = sw.A, sw.B
			}
		}
	}
	return out
}

// reverseAll applies PartialReverse to every chain, once forward and once
// from the other end. Each chain comes back in reversed orientation.
func reverseAll(chains []chain.Chain, th int, p float64, r rng.Source) []chain.Chain {
	if len(chains) <= 1 {
		return chains
	}
	out := make([]chain.Chain, len(chains))
	for i, c := range chains {
		c = chain.PartialReverse(c, th, p, r)
		out[i] = chain.PartialReverse(c.Reversed(), th, p, r)
	}
	return out
}
