// Package splice uses spare vertical photos to bridge or extend perfect
// chains.
//
// For a bucket with threshold th, two disjoint vertical photos of sizes
// s1 and s2 = 2·th − s1 combine into a slide with exactly 2·th tags, the
// size of the bucket itself. Splice enumerates such proposals for every
// complementary size pair, scores all of them at once against the four
// ends of each chain pair with tagset.Batch, and then, in order of
// preference:
//
//  1. bridges two chains through one proposal when both junctions reach th
//     (tail–head, tail–tail, head–head, head–tail);
//  2. otherwise, with probability BuildProb, prepends or appends a
//     proposal to one chain when that junction reaches th.
//
// Ties are broken uniformly at random. A consumed proposal removes every
// other proposal sharing one of its two source photos, and consumed photos
// leave the vertical pool before the next size pair is processed.
package splice
