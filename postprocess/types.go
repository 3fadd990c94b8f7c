package postprocess

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/slideshow/photo"
)

// ErrOptionViolation is returned when Options are out of range.
var ErrOptionViolation = errors.New("postprocess: invalid option supplied")

// DefaultPatience is the number of non-improving rounds tolerated per mode.
const DefaultPatience = 2

// Options tunes Improve.
type Options struct {
	// Patience is the number of consecutive non-improving rounds before
	// switching from strict to greedy mode, and then before stopping.
	Patience int

	// Cache memoizes junction scores; nil scores directly.
	Cache *photo.Cache

	// Logger receives one record per round; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns Patience=2, no cache and no logging.
func DefaultOptions() Options {
	return Options{Patience: DefaultPatience}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Patience < 1 {
		return fmt.Errorf("%w: Patience must be positive (%d)", ErrOptionViolation, o.Patience)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Result is the outcome of Improve.
type Result struct {
	// Sequence holds the improved slides; same multiset as the input.
	Sequence []photo.Photo
	// Rounds is the number of improvement rounds run.
	Rounds int
	// Moves is the number of accepted reversals.
	Moves int
	// Before and After are the sequence scores on entry and on exit.
	Before, After int
}
