// Package dataset reads photo collections and reads and writes
// submissions.
//
// Input format: a header line with the photo count (informational), then
// one line per photo: orientation (H or V), tag count (ignored), tags.
// Photo ids are zero-based line indices, header excluded.
//
// Submission format: the slide count, then one line per slide holding one
// id, or the two ids of a Combined slide separated by a space.
package dataset
