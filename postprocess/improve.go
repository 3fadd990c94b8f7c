package postprocess

import (
	"log/slog"
	"slices"

	"github.com/katalvlaran/slideshow/photo"
)

// Improve raises the score of seq with segment reversals until both strict
// and greedy modes stall. The input slice is not modified.
func Improve(seq []photo.Photo, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	log := opts.logger()

	cur := slices.Clone(seq)
	res := Result{Before: photo.SequenceScore(cur)}
	w := walker{cache: opts.Cache}

	var (
		prev   = -1 // the first round always counts as improving
		idle   int
		greedy bool
	)
	for {
		score := w.total(cur)
		log.Info("post-processing",
			slog.Int("round", res.Rounds),
			slog.Int("score", score),
			slog.Int("max", photo.SequenceMaxScore(cur)),
			slog.Bool("greedy", greedy))

		if score <= prev {
			idle++
		} else {
			idle = 0
		}
		if idle >= opts.Patience {
			if greedy {
				break
			}
			greedy, idle = true, 0
		}
		prev = score

		slices.Reverse(cur)
		res.Moves += w.round(cur, greedy)
		res.Rounds++
	}

	res.Sequence = cur
	res.After = photo.SequenceScore(cur)
	return res, nil
}

type walker struct {
	cache *photo.Cache
}

func (w walker) score(a, b photo.Photo) int { return w.cache.Score(a, b) }

func (w walker) total(seq []photo.Photo) int {
	var s int
	for i := 1; i < len(seq); i++ {
		s += w.score(seq[i-1], seq[i])
	}
	return s
}

// round makes one left-to-right pass and returns the number of accepted
// reversals.
func (w walker) round(seq []photo.Photo, greedy bool) int {
	moves := 0
	for i := 1; i < len(seq); i++ {
		l1, l2 := seq[i-1], seq[i]
		if w.score(l1, l2) >= photo.MaxScore(l1, l2) {
			continue
		}
		if j := w.find(seq, i, greedy); j > 0 {
			reverseInPlace(seq, i, j-1)
			moves++
		}
	}
	return moves
}

// find returns the first j > i+1 such that reversing seq[i:j] improves the
// junctions (i−1, i) and (j−1, j), or −1.
func (w walker) find(seq []photo.Photo, i int, greedy bool) int {
	l1, l2 := seq[i-1], seq[i]
	l12, maxL12 := w.score(l1, l2), photo.MaxScore(l1, l2)

	for j := i + 2; j < len(seq); j++ {
		r1, r2 := seq[j-1], seq[j]
		if !greedy && photo.MaxScore(l1, r1)+photo.MaxScore(l2, r2) < maxL12+photo.MaxScore(r1, r2) {
			continue
		}
		if w.score(l1, r1)+w.score(l2, r2) > l12+w.score(r1, r2) {
			return j
		}
	}
	return -1
}

// reverseInPlace reverses seq[i..k] (inclusive).
func reverseInPlace(seq []photo.Photo, i, k int) {
	for i < k {
		seq[i], seq[k] = seq[k], seq[i]
		i++
		k--
	}
}
