package photo

import (
	"fmt"
	"slices"
	"strings"
)

// Photo is a tagged slideshow item. Tags are sorted and unique; a Photo is
// never mutated once built, only merged into new Combined photos.
type Photo struct {
	ID          ID
	Tags        []string
	Orientation Orientation
}

// New builds an input photo with the given index, orientation and tags.
// The tag slice is copied, sorted and deduplicated.
func New(id int, o Orientation, tags []string) Photo {
	return Photo{ID: Single(id), Tags: normalizeTags(tags), Orientation: o}
}

// NewHorizontal is a shorthand for New(id, Horizontal, tags).
func NewHorizontal(id int, tags ...string) Photo { return New(id, Horizontal, tags) }

// NewVertical is a shorthand for New(id, Vertical, tags).
func NewVertical(id int, tags ...string) Photo { return New(id, Vertical, tags) }

func normalizeTags(tags []string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the number of tags.
func (p Photo) Len() int { return len(p.Tags) }

// MaxScore is the individual contribution ceiling of p: Len()/2.
func (p Photo) MaxScore() int { return len(p.Tags) / 2 }

// HasTag reports whether p carries tag.
func (p Photo) HasTag(tag string) bool {
	_, ok := slices.BinarySearch(p.Tags, tag)
	return ok
}

// String implements fmt.Stringer.
func (p Photo) String() string {
	return fmt.Sprintf("%s(%s)[%s]", p.Orientation, p.ID, strings.Join(p.Tags, ","))
}

// Overlap returns |a ∩ b| with a single merge walk over both sorted tag lists.
func Overlap(a, b Photo) int {
	var i, j, n int
	for i < len(a.Tags) && j < len(b.Tags) {
		switch strings.Compare(a.Tags[i], b.Tags[j]) {
		case 0:
			n++
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}
	return n
}

// Merge combines two Vertical photos into one Combined photo with id
// (a.ID, b.ID) and the union of both tag sets.
func Merge(a, b Photo) (Photo, error) {
	if a.Orientation != Vertical || b.Orientation != Vertical {
		return Photo{}, fmt.Errorf("merge %s with %s: %w", a.ID, b.ID, ErrNotVertical)
	}

	tags := make([]string, 0, len(a.Tags)+len(b.Tags))
	var i, j int
	for i < len(a.Tags) && j < len(b.Tags) {
		switch strings.Compare(a.Tags[i], b.Tags[j]) {
		case 0:
			tags = append(tags, a.Tags[i])
			i++
			j++
		case -1:
			tags = append(tags, a.Tags[i])
			i++
		default:
			tags = append(tags, b.Tags[j])
			j++
		}
	}
	tags = append(tags, a.Tags[i:]...)
	tags = append(tags, b.Tags[j:]...)

	return Photo{
		ID:          Pair(a.ID.First(), b.ID.First()),
		Tags:        tags,
		Orientation: Combined,
	}, nil
}

// MustMerge is like Merge but panics on error. Intended for tests and for
// callers that have already checked both orientations.
func MustMerge(a, b Photo) Photo {
	p, err := Merge(a, b)
	if err != nil {
		panic(err)
	}
	return p
}
