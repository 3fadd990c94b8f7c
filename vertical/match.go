package vertical

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
	"github.com/katalvlaran/slideshow/tagset"
)

// progressEvery controls how often Match logs progress.
const progressEvery = 5000

// Match pairs every photo of vs into Combined photos.
//
// Errors:
//   - photo.ErrNotVertical if any photo is not Vertical;
//   - ErrOddCount if len(vs) is odd;
//   - ErrOptionViolation for bad options.
//
// Complexity: O(n²·w) time for n photos and w = ⌈tags/64⌉, O(n·w) space.
func Match(vs []photo.Photo, opts Options, r rng.Source) ([]photo.Photo, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, p := range vs {
		if p.Orientation != photo.Vertical {
			return nil, fmt.Errorf("vertical: %s: %w", p, photo.ErrNotVertical)
		}
	}
	if len(vs)%2 != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrOddCount, len(vs))
	}

	log := opts.logger()
	log.Info("matching vertical photos", slog.Int("count", len(vs)))

	// Hardest to place first; stable for equal sizes.
	pool := slices.Clone(vs)
	slices.SortStableFunc(pool, func(a, b photo.Photo) int { return b.Len() - a.Len() })

	u := tagset.NewUniverse(pool)
	batch := u.Batch(pool)

	var (
		pairs    = make([]photo.Photo, 0, len(pool)/2)
		overlaps []int
		unions   []int
		best     []int
	)
	for len(pool) > 0 {
		head := slices.Clone(batch.Row(0))
		overlaps = batch.Overlap(head, overlaps)
		unions = batch.Union(head, unions)

		best = best[:0]
		low := 0
		for q := 1; q < len(pool); q++ {
			pen := Penalty(overlaps[q], unions[q], opts.MaxTags)
			switch {
			case len(best) == 0 || pen < low:
				low = pen
				best = append(best[:0], q)
			case pen == low:
				best = append(best, q)
			}
		}

		chosen := best[0]
		if len(pool) > 2 {
			chosen = rng.Choice(r, best)
		}

		m, err := photo.Merge(pool[0], pool[chosen])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, m)

		batch.Keep(func(row int) bool { return row != 0 && row != chosen })
		pool = slices.Delete(pool, chosen, chosen+1)
		pool = pool[1:]

		if len(pairs)%progressEvery == 0 {
			log.Debug("matching progress", slog.Int("pairs", len(pairs)), slog.Int("remaining", len(pool)))
		}
	}

	log.Info("matched vertical photos", slog.Int("pairs", len(pairs)))
	return pairs, nil
}
