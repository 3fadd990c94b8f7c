package splice

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when Options are out of range.
var ErrOptionViolation = errors.New("splice: invalid option supplied")

// Default tuning values.
const (
	DefaultProposals = 20000
	DefaultBuildProb = 0.02
)

// Options tunes Splice.
type Options struct {
	// Proposals caps the number of combined proposals per size pair.
	Proposals int

	// BuildProb is the probability of accepting a one-sided extension.
	// Bridging two chains is always accepted.
	BuildProb float64
}

// DefaultOptions returns Proposals=20000, BuildProb=0.02.
func DefaultOptions() Options {
	return Options{Proposals: DefaultProposals, BuildProb: DefaultBuildProb}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Proposals < 0 {
		return fmt.Errorf("%w: Proposals cannot be negative (%d)", ErrOptionViolation, o.Proposals)
	}
	if o.BuildProb < 0 || o.BuildProb > 1 {
		return fmt.Errorf("%w: BuildProb must be in [0,1] (%g)", ErrOptionViolation, o.BuildProb)
	}
	return nil
}
