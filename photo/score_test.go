package photo_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/slideshow/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPhoto draws up to maxTags tags out of an alphabet of size alpha.
func randomPhoto(r *rand.Rand, id, alpha, maxTags int) photo.Photo {
	n := r.Intn(maxTags + 1)
	tags := make([]string, 0, n)
	for k := 0; k < n; k++ {
		tags = append(tags, fmt.Sprintf("t%d", r.Intn(alpha)))
	}
	return photo.New(id, photo.Horizontal, tags)
}

func TestScore_WorkedExample(t *testing.T) {
	h1 := photo.NewHorizontal(0, "a", "b", "c", "d")
	h2 := photo.NewHorizontal(1, "c", "d", "e", "f")

	assert.Equal(t, 2, photo.Score(h1, h2))
	assert.Equal(t, 2, photo.MaxScore(h1, h2))
	assert.Equal(t, 0, photo.LostScore(h1, h2))
}

func TestScore_SymmetryAndBound(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p1 := randomPhoto(r, 2*i, 12, 10)
		p2 := randomPhoto(r, 2*i+1, 12, 10)

		s := photo.Score(p1, p2)
		require.Equal(t, s, photo.Score(p2, p1), "asymmetric score for %s / %s", p1, p2)
		require.GreaterOrEqual(t, s, 0)
		require.LessOrEqual(t, s, photo.MaxScore(p1, p2), "score above max for %s / %s", p1, p2)
		require.GreaterOrEqual(t, photo.LostScore(p1, p2), 0)
	}
}

func TestSequenceScores(t *testing.T) {
	assert.Zero(t, photo.SequenceScore(nil))
	assert.Zero(t, photo.SequenceScore([]photo.Photo{photo.NewHorizontal(0, "a", "b")}))

	seq := []photo.Photo{
		photo.NewHorizontal(0, "a", "b", "c", "d"),
		photo.NewHorizontal(1, "c", "d", "e", "f"),
		photo.NewHorizontal(2, "a", "b", "x", "y"),
	}
	// (0,1): min(2,2,2)=2; (1,2): min(0,4,4)=0
	assert.Equal(t, 2, photo.SequenceScore(seq))
	assert.Equal(t, 4, photo.SequenceMaxScore(seq))
	assert.Equal(t, 4, photo.SequenceLostScore(seq))
	assert.False(t, photo.IsPerfect(seq))
	assert.True(t, photo.IsPerfect(seq[:2]))
}

func TestCache_MatchesScore(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	ps := make([]photo.Photo, 40)
	for i := range ps {
		ps[i] = randomPhoto(r, i, 8, 6)
	}

	c := photo.NewCache(16)
	for round := 0; round < 3; round++ {
		for i := range ps {
			for j := range ps {
				require.Equal(t, photo.Score(ps[i], ps[j]), c.Score(ps[i], ps[j]))
			}
		}
	}
	assert.LessOrEqual(t, c.Len(), 16, "capacity must bound the cache")
	hits, misses := c.Stats()
	assert.Equal(t, uint64(3*len(ps)*len(ps)), hits+misses)
}

func TestCache_SymmetricKey(t *testing.T) {
	a := photo.NewHorizontal(1, "a", "b")
	b := photo.NewHorizontal(2, "b", "c")

	c := photo.NewCache(0)
	c.Score(a, b)
	c.Score(b, a)
	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, c.Len())
}

// A lookup refreshes an entry, so the least recently used pair goes first.
func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	a := photo.NewHorizontal(0, "a", "b")
	b := photo.NewHorizontal(1, "b", "c")
	c := photo.NewHorizontal(2, "c", "d")
	d := photo.NewHorizontal(3, "d", "e")

	cache := photo.NewCache(2)
	cache.Score(a, b) // miss
	cache.Score(a, c) // miss
	cache.Score(b, a) // hit, refreshes (a,b)
	cache.Score(a, d) // miss, evicts (a,c)
	cache.Score(a, b) // hit
	cache.Score(a, c) // miss

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(4), misses)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_Nil(t *testing.T) {
	var c *photo.Cache
	a := photo.NewHorizontal(1, "a", "b")
	b := photo.NewHorizontal(2, "b", "c")
	assert.Equal(t, photo.Score(a, b), c.Score(a, b))
	assert.Zero(t, c.Len())
}
