package photo

import "fmt"

// ValidateSequence checks the invariants a sequence must satisfy before it
// can be written out:
//   - every slide is Horizontal or Combined;
//   - a Combined id is a pair of two distinct ids;
//   - every original id appears in exactly one slide.
//
// Complexity: O(n) time, O(n) space.
func ValidateSequence(seq []Photo) error {
	seen := make(map[int]struct{}, len(seq))
	for i, p := range seq {
		switch p.Orientation {
		case Horizontal:
			if p.ID.IsPair() {
				return fmt.Errorf("slide %d: horizontal photo with pair id %s: %w", i, p.ID, ErrInvalidID)
			}
		case Combined:
			if !p.ID.IsPair() || p.ID.First() == p.ID.Second() {
				return fmt.Errorf("slide %d: combined photo with id %s: %w", i, p.ID, ErrInvalidID)
			}
		default:
			return fmt.Errorf("slide %d: %s: %w", i, p.Orientation, ErrInvalidOrientation)
		}

		for _, n := range p.ID.Parts() {
			if _, dup := seen[n]; dup {
				return fmt.Errorf("slide %d: id %d: %w", i, n, ErrDuplicateID)
			}
			seen[n] = struct{}{}
		}
	}
	return nil
}

// OriginalIDs flattens the original ids wrapped by every photo of seq.
func OriginalIDs(seq []Photo) []int {
	out := make([]int, 0, len(seq))
	for _, p := range seq {
		out = append(out, p.ID.Parts()...)
	}
	return out
}
