// Package vertical pairs vertical photos into Combined slides before they
// join the main arrangement.
//
// Match processes photos from the largest tag set to the smallest. The
// first remaining photo p is paired with the candidate q minimizing
//
//	2·|p∩q| + 3·(|p∪q| mod 2) + 4·[|p∪q| > MaxTags] + [12 ≤ |p∪q| ≤ 19]
//
// Ties are broken uniformly at random, so the pairing is greedy, not
// optimal, and reproducible only for a fixed seed. Overlaps and unions
// against every remaining candidate are computed in one bitset pass.
package vertical
