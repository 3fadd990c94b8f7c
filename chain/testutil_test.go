package chain_test

import (
	"github.com/katalvlaran/slideshow/chain"
	"github.com/katalvlaran/slideshow/photo"
)

// fixedSource is a scripted rng.Source: Float64 always returns f.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64                   { return s.f }
func (s fixedSource) Intn(int) int                       { return 0 }
func (s fixedSource) Int63() int64                       { return 0 }
func (s fixedSource) Shuffle(n int, swap func(i, j int)) {}

var (
	always = fixedSource{f: 0}
	never  = fixedSource{f: 0.999}
)

// h builds a horizontal photo from single-letter tags, e.g. h(0, "abcd").
func h(id int, tags string) photo.Photo {
	ts := make([]string, 0, len(tags))
	for _, r := range tags {
		ts = append(ts, string(r))
	}
	return photo.New(id, photo.Horizontal, ts)
}

func ids(c chain.Chain) []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.ID.String()
	}
	return out
}

func idsAll(cs []chain.Chain) [][]string {
	out := make([][]string, len(cs))
	for i, c := range cs {
		out[i] = ids(c)
	}
	return out
}
