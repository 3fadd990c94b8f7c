package vertical

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors.
var (
	// ErrOddCount is returned when the number of vertical photos is odd.
	ErrOddCount = errors.New("vertical: number of photos must be even")

	// ErrOptionViolation is returned when Options are out of range.
	ErrOptionViolation = errors.New("vertical: invalid option supplied")
)

// DefaultMaxTags is the union size above which a pairing is penalized.
const DefaultMaxTags = 22

// Penalty weights. The band marks union sizes that pair badly downstream.
const (
	overlapWeight = 2
	oddWeight     = 3
	tooManyWeight = 4
	bandLow       = 12
	bandHigh      = 19
)

// Options tunes Match.
type Options struct {
	// MaxTags is the preferred maximum number of tags on a combined slide.
	MaxTags int

	// Logger receives progress records; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns MaxTags=22 and no logging.
func DefaultOptions() Options {
	return Options{MaxTags: DefaultMaxTags}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.MaxTags < 0 {
		return fmt.Errorf("%w: MaxTags cannot be negative (%d)", ErrOptionViolation, o.MaxTags)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Penalty scores pairing two photos with the given overlap and union size;
// lower is better.
func Penalty(overlap, union, maxTags int) int {
	p := overlapWeight*overlap + oddWeight*(union%2)
	if union > maxTags {
		p += tooManyWeight
	}
	if union >= bandLow && union <= bandHigh {
		p++
	}
	return p
}
