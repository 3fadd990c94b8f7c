package splice

import (
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/rng"
)

// proposals enumerates combined photos made of one pool photo with s1 tags
// and one with s2 tags, skipping pairs that share a tag, until limit is
// reached. Both candidate lists are shuffled first. When s1 == s2 each
// unordered pair is considered once.
func proposals(pool []photo.Photo, s1, s2, limit int, r rng.Source) ([]photo.Photo, error) {
	var p1, p2 []int
	for i, p := range pool {
		if p.Len() == s1 {
			p1 = append(p1, i)
		}
		if p.Len() == s2 {
			p2 = append(p2, i)
		}
	}
	if len(p1) == 0 || len(p2) == 0 {
		return nil, nil
	}
	rng.ShuffleInts(r, p1)
	rng.ShuffleInts(r, p2)

	var out []photo.Photo
	add := func(i1, i2 int) (bool, error) {
		a, b := pool[i1], pool[i2]
		if photo.Overlap(a, b) > 0 {
			return false, nil
		}
		m, err := photo.Merge(a, b)
		if err != nil {
			return false, err
		}
		out = append(out, m)
		return len(out) >= limit, nil
	}

	if s1 != s2 {
		for _, i1 := range p1 {
			for _, i2 := range p2 {
				full, err := add(i1, i2)
				if err != nil {
					return nil, err
				}
				if full {
					return out, nil
				}
			}
		}
		return out, nil
	}

	for x := 0; x < len(p1); x++ {
		for y := x + 1; y < len(p1); y++ {
			full, err := add(p1[x], p1[y])
			if err != nil {
				return nil, err
			}
			if full {
				return out, nil
			}
		}
	}
	return out, nil
}
