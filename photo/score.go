package photo

// Score returns the transition score between two consecutive slides:
// min(|p1 ∩ p2|, |p1 \ p2|, |p2 \ p1|). It is symmetric.
func Score(p1, p2 Photo) int {
	common := Overlap(p1, p2)
	return min(common, len(p1.Tags)-common, len(p2.Tags)-common)
}

// MaxScore returns the best score two slides of these sizes could reach.
func MaxScore(p1, p2 Photo) int {
	return min(len(p1.Tags), len(p2.Tags)) / 2
}

// LostScore returns how much of the individual ceilings of p1 and p2 the
// transition between them wastes. Zero means a perfect junction.
func LostScore(p1, p2 Photo) int {
	return p1.MaxScore() + p2.MaxScore() - 2*Score(p1, p2)
}

func sumAdjacent(seq []Photo, fn func(Photo, Photo) int) int {
	total := 0
	for i := 1; i < len(seq); i++ {
		total += fn(seq[i], seq[i-1])
	}
	return total
}

// SequenceScore sums Score over adjacent pairs (0 for len(seq) <= 1).
func SequenceScore(seq []Photo) int { return sumAdjacent(seq, Score) }

// SequenceMaxScore sums MaxScore over adjacent pairs.
func SequenceMaxScore(seq []Photo) int { return sumAdjacent(seq, MaxScore) }

// SequenceLostScore sums LostScore over adjacent pairs.
func SequenceLostScore(seq []Photo) int { return sumAdjacent(seq, LostScore) }

// IsPerfect reports whether seq loses no score at any junction.
func IsPerfect(seq []Photo) bool { return SequenceLostScore(seq) == 0 }
