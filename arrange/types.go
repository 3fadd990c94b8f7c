package arrange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/splice"
)

// ErrOptionViolation is returned when Options are out of range.
var ErrOptionViolation = errors.New("arrange: invalid option supplied")

// Default tuning values.
const (
	DefaultSeed        int64 = 12
	DefaultShuffleProb       = 0.1
	DefaultReverseProb       = 0.1
	DefaultPatience          = 50
)

// Options tunes Arrange.
type Options struct {
	// Seed initializes the random stream of the whole pass.
	Seed int64

	// ShuffleProb is the acceptance probability of the shuffle operator.
	ShuffleProb float64

	// ReverseProb is the acceptance probability of the partial reverse operator.
	ReverseProb float64

	// Splice tunes the vertical splice step.
	Splice splice.Options

	// Patience is the number of consecutive rounds without a strict score
	// increase after which a bucket stops.
	Patience int

	// Workers bounds the number of buckets optimized at once when no
	// vertical pool is shared. Values < 1 mean sequential.
	Workers int

	// Cache memoizes junction scores; nil makes Arrange create one of
	// photo.DefaultCacheCapacity entries.
	Cache *photo.Cache

	// Logger receives progress records; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the tuned defaults with one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Seed:        DefaultSeed,
		ShuffleProb: DefaultShuffleProb,
		ReverseProb: DefaultReverseProb,
		Splice:      splice.DefaultOptions(),
		Patience:    DefaultPatience,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.ShuffleProb < 0 || o.ShuffleProb > 1 {
		return fmt.Errorf("%w: ShuffleProb must be in [0,1] (%g)", ErrOptionViolation, o.ShuffleProb)
	}
	if o.ReverseProb < 0 || o.ReverseProb > 1 {
		return fmt.Errorf("%w: ReverseProb must be in [0,1] (%g)", ErrOptionViolation, o.ReverseProb)
	}
	if o.Patience < 1 {
		return fmt.Errorf("%w: Patience must be positive (%d)", ErrOptionViolation, o.Patience)
	}
	if err := o.Splice.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// BucketStats summarizes the optimization of one bucket.
type BucketStats struct {
	// Size is the smaller tag count of the bucket (Size and Size+1).
	Size int
	// Threshold is Size/2.
	Threshold int
	// Photos is the number of non-vertical photos in the bucket.
	Photos int
	// InitialChains is the number of chains produced by chain.Build.
	InitialChains int
	// Chains is the number of chains left when the loop stopped.
	Chains int
	// Rounds is the number of local-search rounds run.
	Rounds int
	// Spliced is the number of vertical photos consumed by splicing.
	Spliced int
}

// Result is the outcome of Arrange.
type Result struct {
	// Sequence is every bucket's chains, concatenated in size order.
	Sequence []photo.Photo
	// Vertical holds the vertical photos that splicing did not consume.
	Vertical []photo.Photo
	// Buckets lists per-bucket statistics in size order.
	Buckets []BucketStats
}
