// Package arrange runs the local search that turns a photo collection into
// long perfect chains.
//
// Non-vertical photos are bucketed by size: sizes 2k and 2k+1 share the
// bucket with threshold th = k, the best score any junction inside the
// bucket can reach. For every bucket, in increasing size order:
//
//  1. chain.Build links the bucket into perfect chains;
//  2. rounds of stitch → insert → shuffle → partial reverse → vertical
//     splice (package splice) try to reduce the number of chains while
//     keeping each one perfect;
//  3. the loop stops when one chain is left or when the total chain score
//     has not increased for Patience consecutive rounds (default 50).
//
// The chains of a bucket are concatenated, and the buckets are
// concatenated in size order. Vertical photos never enter the buckets;
// they only feed the splice step and the unused ones are returned.
//
// Every randomized step draws from a stream derived from Options.Seed in
// bucket order, so results do not depend on Options.Workers. Buckets run
// in parallel only when there is no vertical pool to share.
package arrange
