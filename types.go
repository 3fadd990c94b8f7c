package slideshow

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/slideshow/arrange"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/postprocess"
	"github.com/katalvlaran/slideshow/vertical"
)

// ErrLostPhoto is returned when the final slideshow does not contain every
// input photo.
var ErrLostPhoto = errors.New("slideshow: photos lost during optimization")

// DefaultMatchSeed seeds the vertical matcher.
const DefaultMatchSeed int64 = 17

// Options aggregates the options of every stage.
type Options struct {
	// Arrange configures both arrangement passes. Arrange.Seed is reused
	// as is for the second pass.
	Arrange arrange.Options

	// Match configures the vertical matcher.
	Match vertical.Options

	// MatchSeed seeds the vertical matcher.
	MatchSeed int64

	// Post configures the final improvement.
	Post postprocess.Options

	// CacheCapacity bounds the score cache shared by all stages.
	// Values < 1 select photo.DefaultCacheCapacity.
	CacheCapacity int

	// Logger is handed to every stage whose own Logger is nil.
	Logger *slog.Logger
}

// DefaultOptions returns the defaults of every stage.
func DefaultOptions() Options {
	return Options{
		Arrange:       arrange.DefaultOptions(),
		Match:         vertical.DefaultOptions(),
		MatchSeed:     DefaultMatchSeed,
		Post:          postprocess.DefaultOptions(),
		CacheCapacity: photo.DefaultCacheCapacity,
	}
}

// Validate validates every stage's options.
func (o Options) Validate() error {
	return errors.Join(o.Arrange.Validate(), o.Match.Validate(), o.Post.Validate())
}

// Result is a finished slideshow.
type Result struct {
	// Slides is the validated slideshow.
	Slides []photo.Photo

	// Score and MaxScore are the sequence score and its theoretical maximum.
	Score, MaxScore int

	// Paired is the number of Combined slides produced by the matcher.
	Paired int

	// First and Second are the statistics of both arrangement passes.
	First, Second []arrange.BucketStats

	// Moves is the number of reversals accepted by postprocess.
	Moves int
}
