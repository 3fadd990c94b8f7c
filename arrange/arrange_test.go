package arrange_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slideshow/arrange"
	"github.com/katalvlaran/slideshow/photo"
)

func letters(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func hz(id int, tags string) photo.Photo { return photo.New(id, photo.Horizontal, letters(tags)) }
func vt(id int, tags string) photo.Photo { return photo.New(id, photo.Vertical, letters(tags)) }

// randomPhotos draws n horizontal photos with 1..maxTags tags from a
// 12-letter alphabet.
func randomPhotos(seed int64, n, maxTags int) []photo.Photo {
	r := rand.New(rand.NewSource(seed))
	const alphabet = "abcdefghijkl"
	out := make([]photo.Photo, n)
	for i := range out {
		k := 1 + r.Intn(maxTags)
		tags := make([]string, k)
		for t := range tags {
			tags[t] = string(alphabet[r.Intn(len(alphabet))])
		}
		out[i] = photo.New(i, photo.Horizontal, tags)
	}
	return out
}

func opts() arrange.Options {
	o := arrange.DefaultOptions()
	o.Patience = 5
	o.Workers = 1
	return o
}

func TestOptions_Validate(t *testing.T) {
	require.NoError(t, arrange.DefaultOptions().Validate())

	for name, mutate := range map[string]func(*arrange.Options){
		"shuffle above one":  func(o *arrange.Options) { o.ShuffleProb = 1.5 },
		"negative reverse":   func(o *arrange.Options) { o.ReverseProb = -0.1 },
		"zero patience":      func(o *arrange.Options) { o.Patience = 0 },
		"bad splice options": func(o *arrange.Options) { o.Splice.BuildProb = 2 },
	} {
		t.Run(name, func(t *testing.T) {
			o := arrange.DefaultOptions()
			mutate(&o)
			_, err := arrange.Arrange(nil, o)
			require.ErrorIs(t, err, arrange.ErrOptionViolation)
		})
	}
}

func TestArrange_Empty(t *testing.T) {
	res, err := arrange.Arrange(nil, opts())
	require.NoError(t, err)
	assert.Empty(t, res.Sequence)
	assert.Empty(t, res.Vertical)
	assert.Empty(t, res.Buckets)
}

func TestArrange_PerfectJunctions(t *testing.T) {
	combined := photo.MustMerge(vt(2, "ab"), vt(3, "cd"))
	in := []photo.Photo{hz(0, "abcd"), hz(1, "cdef"), combined}

	res, err := arrange.Arrange(in, opts())
	require.NoError(t, err)
	require.Len(t, res.Sequence, 3)
	assert.Equal(t, 4, photo.SequenceScore(res.Sequence))
	assert.Equal(t, photo.SequenceMaxScore(res.Sequence), photo.SequenceScore(res.Sequence))
	require.Len(t, res.Buckets, 1)
	assert.Equal(t, arrange.BucketStats{
		Size: 4, Threshold: 2, Photos: 3, InitialChains: 1, Chains: 1, Rounds: 1,
	}, res.Buckets[0])
}

func TestArrange_ZeroThresholdJoinsAll(t *testing.T) {
	in := []photo.Photo{hz(0, "a"), hz(1, "b"), hz(2, "c"), hz(3, "")}
	res, err := arrange.Arrange(in, opts())
	require.NoError(t, err)
	require.Len(t, res.Buckets, 1)
	assert.Equal(t, 0, res.Buckets[0].Threshold)
	assert.Equal(t, 1, res.Buckets[0].Chains)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, photo.OriginalIDs(res.Sequence))
}

func TestArrange_SplicesVerticalBridge(t *testing.T) {
	in := []photo.Photo{
		hz(0, "abcd"),
		hz(1, "wxyz"),
		vt(2, "cd"),
		vt(3, "wx"),
	}
	res, err := arrange.Arrange(in, opts())
	require.NoError(t, err)

	require.Len(t, res.Sequence, 3)
	assert.Empty(t, res.Vertical)
	assert.Equal(t, 1, res.Buckets[0].Chains)
	assert.Equal(t, 2, res.Buckets[0].Spliced)
	assert.Equal(t, photo.Combined, res.Sequence[1].Orientation)
	assert.Equal(t, 4, photo.SequenceScore(res.Sequence))
	require.NoError(t, photo.ValidateSequence(res.Sequence))
}

func TestArrange_Conservation(t *testing.T) {
	in := randomPhotos(7, 120, 8)
	for i := 0; i < 20; i++ {
		in = append(in, photo.New(len(in), photo.Vertical, letters(fmt.Sprintf("%c%c", 'a'+i%12, 'a'+(i*5)%12))))
	}

	res, err := arrange.Arrange(in, opts())
	require.NoError(t, err)

	got := append(photo.OriginalIDs(res.Sequence), photo.OriginalIDs(res.Vertical)...)
	slices.Sort(got)
	want := make([]int, len(in))
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ids not conserved (-want +got):\n%s", diff)
	}
	require.NoError(t, photo.ValidateSequence(res.Sequence))
}

func TestArrange_BucketsInSizeOrder(t *testing.T) {
	in := randomPhotos(3, 80, 9)
	res, err := arrange.Arrange(in, opts())
	require.NoError(t, err)

	for i := 1; i < len(res.Sequence); i++ {
		prev, cur := res.Sequence[i-1].Len()/2*2, res.Sequence[i].Len()/2*2
		require.LessOrEqual(t, prev, cur, "slide %d", i)
	}
	for i := 1; i < len(res.Buckets); i++ {
		assert.Less(t, res.Buckets[i-1].Size, res.Buckets[i].Size)
	}
}

func TestArrange_WorkersDoNotChangeResult(t *testing.T) {
	in := randomPhotos(11, 150, 8)

	seq := opts()
	par := opts()
	par.Workers = 4

	a, err := arrange.Arrange(in, seq)
	require.NoError(t, err)
	b, err := arrange.Arrange(in, par)
	require.NoError(t, err)

	if diff := cmp.Diff(photo.OriginalIDs(a.Sequence), photo.OriginalIDs(b.Sequence)); diff != "" {
		t.Fatalf("sequence depends on workers (-seq +par):\n%s", diff)
	}
	assert.Equal(t, a.Buckets, b.Buckets)
}

func TestArrange_Deterministic(t *testing.T) {
	in := randomPhotos(5, 100, 6)
	in = append(in, vt(100, "ab"), vt(101, "cd"), vt(102, "ef"), vt(103, "gh"))

	a, err := arrange.Arrange(in, opts())
	require.NoError(t, err)
	b, err := arrange.Arrange(in, opts())
	require.NoError(t, err)
	assert.Equal(t, photo.OriginalIDs(a.Sequence), photo.OriginalIDs(b.Sequence))
	assert.Equal(t, photo.OriginalIDs(a.Vertical), photo.OriginalIDs(b.Vertical))
}
