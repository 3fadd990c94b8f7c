// Package slideshow builds a high-scoring slideshow from tagged photos.
//
// Two slides score min(|A∩B|, |A\B|, |B\A|) when adjacent. Horizontal
// photos are slides on their own; vertical photos must be paired into a
// Combined slide carrying the union of both tag sets. Create runs the
// whole pipeline:
//
//	photos ─► arrange (horizontals; verticals feed the splicer)
//	        ─► vertical.Match (leftover verticals paired up)
//	        ─► arrange (slides + pairs, no vertical pool)
//	        ─► postprocess.Improve
//	        ─► photo.ValidateSequence
//
// Packages:
//
//	photo/        Photo, ID, scoring, bounded score cache, output invariants
//	tagset/       tag universe, popcount bitsets, batched scoring
//	rng/          explicit random sources and derived streams
//	chain/        perfect-chain builder and the four chain operators
//	splice/       vertical splicer used inside the local search
//	vertical/     vertical photo matcher
//	arrange/      bucketed local search
//	postprocess/  reversal-based final improvement
//	dataset/      input parsing, submission writing and reading
//	report/       spreadsheet report of a finished slideshow
//
// The command in cmd/slideshow wires configuration, logging, file I/O and
// the report around Create.
//
// Every stage draws randomness from sources seeded by Options, so a given
// input always yields the same slideshow, whatever Options.Arrange.Workers is.
package slideshow
