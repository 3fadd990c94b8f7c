// Package chain provides perfect chains of slides and the pairwise
// mutations the local search applies to them.
//
// A Chain is an ordered run of photos. It is perfect when every junction
// reaches the maximum score both neighbours allow (photo.SequenceLostScore
// is zero). For a bucket of photos with size or size+1 tags the threshold
// th = size/2 is exactly that maximum, so "score ≥ th at every junction"
// and "perfect" coincide.
//
// Build greedily links a bucket into perfect chains. The operators below
// never break perfection; each returns an explicit result instead of
// clearing slots in a shared slice:
//
//   - Stitch:         join two chains end to end (4 orientations).
//   - Insert:         splice a whole chain into an inner junction of another.
//   - Shuffle:        with probability p, graft a chain onto a prefix of another
//     and leave the suffix as a separate chain.
//   - PartialReverse: with probability p, reverse a prefix of a chain.
//
// All operators allocate fresh chains; their inputs are never modified.
package chain
