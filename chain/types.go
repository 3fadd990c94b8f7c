package chain

import (
	"errors"
	"slices"

	"github.com/katalvlaran/slideshow/photo"
)

// ErrImperfectChain signals that a chain lost score at some junction after
// an operation that must preserve perfection. It is a logic defect.
var ErrImperfectChain = errors.New("chain: chain is not perfect")

// Chain is an ordered run of photos.
type Chain []photo.Photo

// Head returns the first photo. c must be non-empty.
func (c Chain) Head() photo.Photo { return c[0] }

// Tail returns the last photo. c must be non-empty.
func (c Chain) Tail() photo.Photo { return c[len(c)-1] }

// Reversed returns a reversed copy of c.
func (c Chain) Reversed() Chain {
	out := slices.Clone(c)
	slices.Reverse(out)
	return out
}

// Perfect reports whether c loses no score at any junction.
func (c Chain) Perfect() bool { return photo.IsPerfect(c) }

// Score returns the sum of junction scores of c.
func (c Chain) Score() int { return photo.SequenceScore(c) }

// Concat returns a new chain holding all parts in order.
func Concat(parts ...Chain) Chain {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Chain, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Flatten concatenates chains into one photo sequence.
func Flatten(chains []Chain) []photo.Photo {
	return Concat(chains...)
}

// TotalScore sums the junction scores inside every chain.
func TotalScore(chains []Chain) int {
	total := 0
	for _, c := range chains {
		total += c.Score()
	}
	return total
}

// AllPerfect reports whether every chain is perfect.
func AllPerfect(chains []Chain) bool {
	for _, c := range chains {
		if !c.Perfect() {
			return false
		}
	}
	return true
}

// Result is the outcome of a pairwise merge: either Merged with the new
// chain, or unchanged (zero value).
type Result struct {
	Merged bool
	Chain  Chain
}

func merged(c Chain) Result { return Result{Merged: true, Chain: c} }

// Swap is the outcome of Shuffle: when Applied, A and B replace the two
// input chains.
type Swap struct {
	Applied bool
	A, B    Chain
}
