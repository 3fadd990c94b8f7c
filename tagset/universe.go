package tagset

import (
	"slices"

	"github.com/katalvlaran/slideshow/photo"
)

// Universe is an immutable, sorted tag dictionary.
type Universe struct {
	tags  []string
	index map[string]int
}

// NewUniverse collects the distinct tags of every given collection.
func NewUniverse(collections ...[]photo.Photo) Universe {
	seen := make(map[string]struct{})
	for _, ps := range collections {
		for _, p := range ps {
			for _, t := range p.Tags {
				seen[t] = struct{}{}
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	slices.Sort(tags)

	index := make(map[string]int, len(tags))
	for i, t := range tags {
		index[t] = i
	}
	return Universe{tags: tags, index: index}
}

// Len returns the number of distinct tags.
func (u Universe) Len() int { return len(u.tags) }

// Words returns the number of uint64 words per Set.
func (u Universe) Words() int { return (len(u.tags) + 63) / 64 }

// Tags returns the sorted tags. The slice must not be modified.
func (u Universe) Tags() []string { return u.tags }

// Index returns the bit position of tag.
func (u Universe) Index(tag string) (int, bool) {
	i, ok := u.index[tag]
	return i, ok
}

// Set encodes the tags of p. Tags outside the universe are ignored.
func (u Universe) Set(p photo.Photo) Set {
	s := make(Set, u.Words())
	u.fill(s, p)
	return s
}

func (u Universe) fill(s Set, p photo.Photo) {
	for _, t := range p.Tags {
		if i, ok := u.index[t]; ok {
			s[i>>6] |= 1 << (uint(i) & 63)
		}
	}
}

// Batch encodes every photo of ps as one row.
func (u Universe) Batch(ps []photo.Photo) *Batch {
	w := u.Words()
	b := &Batch{words: w, rows: len(ps), bits: make([]uint64, w*len(ps))}
	for i, p := range ps {
		u.fill(b.bits[i*w:(i+1)*w], p)
	}
	return b
}
