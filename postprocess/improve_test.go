package postprocess_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/postprocess"
)

func hz(id int, tags ...string) photo.Photo { return photo.NewHorizontal(id, tags...) }

func randomSlides(seed int64, n int) []photo.Photo {
	r := rand.New(rand.NewSource(seed))
	const alphabet = "abcdefghij"
	out := make([]photo.Photo, n)
	for i := range out {
		tags := make([]string, 2+r.Intn(6))
		for t := range tags {
			tags[t] = string(alphabet[r.Intn(len(alphabet))])
		}
		out[i] = photo.NewHorizontal(i, tags...)
	}
	return out
}

func sortedIDs(seq []photo.Photo) []int {
	ids := photo.OriginalIDs(seq)
	slices.Sort(ids)
	return ids
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, postprocess.DefaultOptions().Validate())
	_, err := postprocess.Improve(nil, postprocess.Options{})
	require.ErrorIs(t, err, postprocess.ErrOptionViolation)
}

func TestImprove_Trivial(t *testing.T) {
	for _, seq := range [][]photo.Photo{nil, {hz(0, "a", "b")}} {
		res, err := postprocess.Improve(seq, postprocess.DefaultOptions())
		require.NoError(t, err)
		assert.Len(t, res.Sequence, len(seq))
		assert.Zero(t, res.Moves)
		assert.Zero(t, res.After)
	}
}

func TestImprove_ReversalJoinsMatchingEnds(t *testing.T) {
	seq := []photo.Photo{
		hz(0, "a", "b", "c", "d"),
		hz(1, "w", "x", "y", "z"),
		hz(2, "c", "d", "e", "f"),
		hz(3, "w", "x", "u", "v"),
	}
	orig := slices.Clone(seq)

	res, err := postprocess.Improve(seq, postprocess.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Before)
	assert.Equal(t, 4, res.After)
	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, res.After, photo.SequenceScore(res.Sequence))
	assert.Equal(t, []int{3, 1, 2, 0}, photo.OriginalIDs(res.Sequence))
	assert.Equal(t, orig, seq, "input must not be modified")
}

// The only improving reversal pairs the large slides with the small ones,
// which lowers the attainable maximum; strict mode refuses it and greedy
// mode takes it.
func TestImprove_GreedyAcceptsWhatStrictRefuses(t *testing.T) {
	seq := []photo.Photo{
		hz(0, "a", "b", "c", "d"),
		hz(1, "e", "f", "g", "h"),
		hz(2, "a", "x"),
		hz(3, "e", "y"),
	}

	var logs bytes.Buffer
	opts := postprocess.DefaultOptions()
	opts.Logger = slog.New(slog.NewJSONHandler(&logs, nil))

	res, err := postprocess.Improve(seq, opts)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Before)
	assert.Equal(t, 2, res.After)
	assert.Equal(t, 1, res.Moves)
	assert.Equal(t, 5, res.Rounds)
	assert.Equal(t, []int{3, 1, 2, 0}, photo.OriginalIDs(res.Sequence))

	var greedyRounds []int
	dec := json.NewDecoder(&logs)
	for dec.More() {
		var rec struct {
			Round  int  `json:"round"`
			Score  int  `json:"score"`
			Greedy bool `json:"greedy"`
		}
		require.NoError(t, dec.Decode(&rec))
		if rec.Greedy {
			greedyRounds = append(greedyRounds, rec.Round)
		} else {
			assert.Zero(t, rec.Score, "strict rounds must not improve round %d", rec.Round)
		}
	}
	assert.Equal(t, []int{3, 4, 5}, greedyRounds)
}

func TestImprove_MonotoneAndConserving(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		seq := randomSlides(seed, 150)
		res, err := postprocess.Improve(seq, postprocess.DefaultOptions())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.After, res.Before)
		assert.Equal(t, photo.SequenceScore(seq), res.Before)
		assert.LessOrEqual(t, res.After, photo.SequenceMaxScore(res.Sequence))
		if diff := cmp.Diff(sortedIDs(seq), sortedIDs(res.Sequence)); diff != "" {
			t.Fatalf("seed %d: ids changed (-in +out):\n%s", seed, diff)
		}
	}
}

func TestImprove_FixedPoint(t *testing.T) {
	opts := postprocess.DefaultOptions()
	opts.Cache = photo.NewCache(0)

	first, err := postprocess.Improve(randomSlides(42, 200), opts)
	require.NoError(t, err)

	second, err := postprocess.Improve(first.Sequence, opts)
	require.NoError(t, err)
	assert.Equal(t, first.After, second.After)
	assert.Zero(t, second.Moves)
	assert.Equal(t, 2*opts.Patience, second.Rounds)
}

func TestImprove_CacheDoesNotChangeResult(t *testing.T) {
	seq := randomSlides(9, 120)

	plain, err := postprocess.Improve(seq, postprocess.DefaultOptions())
	require.NoError(t, err)

	opts := postprocess.DefaultOptions()
	opts.Cache = photo.NewCache(64)
	cached, err := postprocess.Improve(seq, opts)
	require.NoError(t, err)

	assert.Equal(t, photo.OriginalIDs(plain.Sequence), photo.OriginalIDs(cached.Sequence))
	assert.Equal(t, plain.Moves, cached.Moves)
}
