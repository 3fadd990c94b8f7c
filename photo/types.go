package photo

import (
	"errors"
	"strconv"
)

// Sentinel errors for the photo model.
var (
	// ErrNotVertical is returned by Merge when either operand is not Vertical.
	ErrNotVertical = errors.New("photo: only vertical photos can be combined")

	// ErrInvalidOrientation marks a slide that may not appear in a final sequence.
	ErrInvalidOrientation = errors.New("photo: invalid slide orientation")

	// ErrInvalidID marks a malformed id (e.g. a pair built from the same photo twice).
	ErrInvalidID = errors.New("photo: invalid id")

	// ErrDuplicateID marks an original id used by more than one slide.
	ErrDuplicateID = errors.New("photo: id is not unique")
)

// Orientation tells how a photo takes part in a slideshow.
type Orientation uint8

const (
	// Horizontal photos form a slide on their own.
	Horizontal Orientation = iota

	// Vertical photos must be paired before they form a slide.
	Vertical

	// Combined photos are two merged Vertical photos.
	Combined
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	case Combined:
		return "Combined"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}

// ID identifies a photo: a single input index, or an ordered pair of input
// indices for Combined photos. The zero value is Single(0).
type ID struct {
	first  int
	second int
	pair   bool
}

// Single returns the id of an input photo.
func Single(n int) ID { return ID{first: n} }

// Pair returns the id of a photo combined from a and b, in that order.
func Pair(a, b int) ID { return ID{first: a, second: b, pair: true} }

// IsPair reports whether id refers to a Combined photo.
func (id ID) IsPair() bool { return id.pair }

// First returns the single id, or the first element of a pair.
func (id ID) First() int { return id.first }

// Second returns the second element of a pair; it is 0 for single ids.
func (id ID) Second() int { return id.second }

// Parts returns the original input ids wrapped by id, in stored order.
func (id ID) Parts() []int {
	if id.pair {
		return []int{id.first, id.second}
	}
	return []int{id.first}
}

// Contains reports whether n is one of the original ids wrapped by id.
func (id ID) Contains(n int) bool {
	return id.first == n || (id.pair && id.second == n)
}

// String renders the id the way it appears in a submission line.
func (id ID) String() string {
	if id.pair {
		return strconv.Itoa(id.first) + " " + strconv.Itoa(id.second)
	}
	return strconv.Itoa(id.first)
}

// less gives ids a total order (singles before pairs).
func (id ID) less(o ID) bool {
	if id.pair != o.pair {
		return !id.pair
	}
	if id.first != o.first {
		return id.first < o.first
	}
	return id.second < o.second
}
