package vertical_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
	"github.com/katalvlaran/slideshow/vertical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVerticals(seed int64, n int) []photo.Photo {
	r := rand.New(rand.NewSource(seed))
	out := make([]photo.Photo, n)
	for i := range out {
		k := 1 + r.Intn(10)
		tags := make([]string, k)
		for j := range tags {
			tags[j] = fmt.Sprintf("t%02d", r.Intn(40))
		}
		out[i] = photo.New(i, photo.Vertical, tags)
	}
	return out
}

func pairIDs(ps []photo.Photo) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID.String()
	}
	return out
}

func TestMatch_OnlyPossiblePairing(t *testing.T) {
	vs := []photo.Photo{photo.NewVertical(2, "a", "b"), photo.NewVertical(3, "c", "d")}
	pairs, err := vertical.Match(vs, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, photo.Combined, pairs[0].Orientation)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pairs[0].Tags)
	assert.Equal(t, photo.Pair(2, 3), pairs[0].ID)
}

func TestMatch_InvalidInput(t *testing.T) {
	three := []photo.Photo{photo.NewVertical(0, "a"), photo.NewVertical(1, "b"), photo.NewVertical(2, "c")}
	_, err := vertical.Match(three, vertical.DefaultOptions(), rng.New(17))
	require.ErrorIs(t, err, vertical.ErrOddCount)

	mixed := []photo.Photo{photo.NewVertical(0, "a"), photo.NewHorizontal(1, "b")}
	_, err = vertical.Match(mixed, vertical.DefaultOptions(), rng.New(17))
	require.ErrorIs(t, err, photo.ErrNotVertical)

	_, err = vertical.Match(nil, vertical.Options{MaxTags: -1}, rng.New(17))
	require.ErrorIs(t, err, vertical.ErrOptionViolation)
}

func TestMatch_LogsCounts(t *testing.T) {
	var logs bytes.Buffer
	opts := vertical.DefaultOptions()
	opts.Logger = slog.New(slog.NewJSONHandler(&logs, nil))

	_, err := vertical.Match(randomVerticals(6, 10), opts, rng.New(17))
	require.NoError(t, err)

	var recs []map[string]any
	dec := json.NewDecoder(&logs)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)
	assert.Equal(t, "matching vertical photos", recs[0]["msg"])
	assert.Equal(t, float64(10), recs[0]["count"])
	assert.Equal(t, "matched vertical photos", recs[1]["msg"])
	assert.Equal(t, float64(5), recs[1]["pairs"])
}

func TestMatch_Empty(t *testing.T) {
	pairs, err := vertical.Match(nil, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestMatch_UsesEveryPhotoOnce(t *testing.T) {
	vs := randomVerticals(4, 200)
	pairs, err := vertical.Match(vs, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	require.Len(t, pairs, 100)
	require.NoError(t, photo.ValidateSequence(pairs))

	got := photo.OriginalIDs(pairs)
	slices.Sort(got)
	want := make([]int, len(vs))
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestMatch_SeedDeterminism(t *testing.T) {
	vs := randomVerticals(8, 120)
	a, err := vertical.Match(vs, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	b, err := vertical.Match(vs, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	if diff := cmp.Diff(pairIDs(a), pairIDs(b)); diff != "" {
		t.Fatalf("same seed, different pairing (-first +second):\n%s", diff)
	}
}

func TestMatch_PrefersDisjointEvenUnion(t *testing.T) {
	// {a,b,c} goes first. Candidates: {a} overlaps (penalty 2+3), {q,r}
	// gives an odd union (3), {x,y,z} an even disjoint union of 6 (0).
	vs := []photo.Photo{
		photo.NewVertical(0, "a"),
		photo.NewVertical(1, "a", "b", "c"),
		photo.NewVertical(2, "x", "y", "z"),
		photo.NewVertical(3, "q", "r"),
	}
	pairs, err := vertical.Match(vs, vertical.DefaultOptions(), rng.New(17))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, photo.Pair(1, 2), pairs[0].ID)
	assert.Equal(t, photo.Pair(3, 0), pairs[1].ID)
}

func TestPenalty(t *testing.T) {
	assert.Equal(t, 0, vertical.Penalty(0, 10, 22))
	assert.Equal(t, 3, vertical.Penalty(0, 11, 22))
	assert.Equal(t, 1, vertical.Penalty(0, 12, 22))
	assert.Equal(t, 4, vertical.Penalty(0, 19, 22))
	assert.Equal(t, 0, vertical.Penalty(0, 20, 22))
	assert.Equal(t, 4, vertical.Penalty(0, 24, 22))
	assert.Equal(t, 4+3+4, vertical.Penalty(2, 23, 22))
}
