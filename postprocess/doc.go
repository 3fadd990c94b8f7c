// Package postprocess - reversal-based improvement of a finished slideshow.
//
// Improve runs first-improvement rounds over an open sequence of slides.
// A round walks the junctions left to right; at every junction (l1, l2)
// scoring below its maximum it looks ahead for a later junction (r1, r2)
// such that reversing the run l2..r1 raises the combined score of the two
// junctions:
//
//	before: … l1 | l2 … r1 | r2 …
//	after:  … l1 | r1 … l2 | r2 …
//	accept iff S(l1,r1) + S(l2,r2) > S(l1,l2) + S(r1,r2)
//
// Junctions inside the reversed run keep their score because S is
// symmetric, so every accepted move strictly raises the total.
//
// Modes:
//   - strict (initial): a candidate is skipped when the maximum attainable
//     score of the new junctions is below that of the old ones;
//   - greedy: no such filter. Entered after Patience rounds without
//     improvement; Improve stops after Patience more non-improving
//     greedy rounds.
//
// The sequence is reversed before every round so both scan directions are
// visited. A round that does not improve the score applies no move, which
// makes the result a fixed point: calling Improve on its own output does
// not change the score.
//
// Complexity:
//   - One round: O(n²) candidate checks in the worst case, each O(t) for
//     t tags (O(1) on score cache hits); O(j−i) per accepted move.
//   - Memory: O(n) for the working copy.
package postprocess
