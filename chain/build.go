package chain

import (
	"fmt"

	"github.com/katalvlaran/slideshow/photo"
)

// Build greedily links items into perfect chains.
//
// Starting from the first remaining item, it repeatedly appends the first
// remaining item (in input order) whose tag overlap with the current tail
// equals th. When none exists the chain is closed and a new one starts from
// the first remaining item.
//
// items should share a bucket: sizes 2·th or 2·th+1. The result is checked
// and ErrImperfectChain is returned if any chain loses score.
//
// Complexity: O(n²·t) time for n items of t tags, O(n) extra space.
func Build(items []photo.Photo, th int) ([]Chain, error) {
	if len(items) == 0 {
		return nil, nil
	}

	// Remaining pool as a linked list over item indices; keeps input order
	// while removals stay O(1).
	n := len(items)
	next := make([]int, n+1) // next[n] is the list head sentinel
	prev := make([]int, n+1)
	for i := 0; i <= n; i++ {
		next[i] = (i + 1) % (n + 1)
		prev[i] = (i + n) % (n + 1)
	}
	remove := func(i int) {
		next[prev[i]] = next[i]
		prev[next[i]] = prev[i]
	}

	var out []Chain
	first := next[n]
	remove(first)
	cur := Chain{items[first]}

	for next[n] != n {
		tail := cur.Tail()
		found := -1
		for i := next[n]; i != n; i = next[i] {
			if photo.Overlap(items[i], tail) == th {
				found = i
				break
			}
		}

		if found >= 0 {
			remove(found)
			cur = append(cur, items[found])
			continue
		}

		out = append(out, cur)
		first = next[n]
		remove(first)
		cur = Chain{items[first]}
	}
	out = append(out, cur)

	for i, c := range out {
		if !c.Perfect() {
			return nil, fmt.Errorf("build chain %d (th=%d): %w", i, th, ErrImperfectChain)
		}
	}
	return out, nil
}
