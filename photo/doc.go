// Package photo defines the tagged item model of a slideshow and the pure
// scoring functions every other package builds on.
//
// A Photo carries an ID, a sorted set of tags and an Orientation:
//
//   - Horizontal photos are slides on their own.
//   - Vertical photos are half-slides; two of them are merged into one
//     Combined photo whose ID is the ordered pair of the sources and whose
//     tags are the union of both tag sets.
//
// Scoring between two consecutive slides p1, p2:
//
//	Score(p1, p2)     = min(|p1 ∩ p2|, |p1 \ p2|, |p2 \ p1|)
//	MaxScore(p1, p2)  = min(len(p1), len(p2)) / 2
//	LostScore(p1, p2) = p1.MaxScore() + p2.MaxScore() − 2·Score(p1, p2)
//
// SequenceScore, SequenceMaxScore and SequenceLostScore sum the above over
// adjacent pairs. A sequence whose lost score is zero is called perfect.
//
// Cache memoizes Score by item identity with a bounded capacity; it is safe
// for concurrent use. ValidateSequence enforces the output invariants: only
// Horizontal or Combined slides, and every original id exactly once.
package photo
