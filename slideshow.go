package slideshow

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/slideshow/arrange"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/postprocess"
	"github.com/katalvlaran/slideshow/rng"
	"github.com/katalvlaran/slideshow/vertical"
)

// Create turns photos into a validated slideshow.
//
// Errors:
//   - option errors of any stage;
//   - photo.ErrNotVertical or vertical.ErrOddCount from the matcher;
//   - chain.ErrImperfectChain if the local search breaks a chain;
//   - photo.ErrDuplicateID, photo.ErrInvalidID, photo.ErrInvalidOrientation
//     or ErrLostPhoto if the result fails validation.
func Create(photos []photo.Photo, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	capacity := opts.CacheCapacity
	if capacity < 1 {
		capacity = photo.DefaultCacheCapacity
	}
	cache := photo.NewCache(capacity)

	ao := opts.Arrange
	if ao.Cache == nil {
		ao.Cache = cache
	}
	if ao.Logger == nil {
		ao.Logger = log.With(slog.String("stage", "arrange"))
	}
	mo := opts.Match
	if mo.Logger == nil {
		mo.Logger = log.With(slog.String("stage", "match"))
	}
	po := opts.Post
	if po.Cache == nil {
		po.Cache = cache
	}
	if po.Logger == nil {
		po.Logger = log.With(slog.String("stage", "postprocess"))
	}

	first, err := arrange.Arrange(photos, ao)
	if err != nil {
		return Result{}, fmt.Errorf("first arrangement: %w", err)
	}

	pairs, err := vertical.Match(first.Vertical, mo, rng.New(opts.MatchSeed))
	if err != nil {
		return Result{}, fmt.Errorf("vertical matching: %w", err)
	}

	merged := make([]photo.Photo, 0, len(first.Sequence)+len(pairs))
	merged = append(merged, first.Sequence...)
	merged = append(merged, pairs...)
	second, err := arrange.Arrange(merged, ao)
	if err != nil {
		return Result{}, fmt.Errorf("second arrangement: %w", err)
	}

	post, err := postprocess.Improve(second.Sequence, po)
	if err != nil {
		return Result{}, fmt.Errorf("post-processing: %w", err)
	}

	slides := post.Sequence
	if err := photo.ValidateSequence(slides); err != nil {
		return Result{}, err
	}
	if got := len(photo.OriginalIDs(slides)); got != len(photos) {
		return Result{}, fmt.Errorf("%w: %d of %d photos placed", ErrLostPhoto, got, len(photos))
	}

	res := Result{
		Slides:   slides,
		Score:    photo.SequenceScore(slides),
		MaxScore: photo.SequenceMaxScore(slides),
		Paired:   len(pairs),
		First:    first.Buckets,
		Second:   second.Buckets,
		Moves:    post.Moves,
	}
	hits, misses := cache.Stats()
	log.Info("slideshow created",
		slog.Int("slides", len(slides)),
		slog.Int("score", res.Score),
		slog.Int("max", res.MaxScore),
		slog.Int("paired", res.Paired),
		slog.Uint64("cache_hits", hits),
		slog.Uint64("cache_misses", misses))
	return res, nil
}
