package dataset

import (
	"errors"
	"time"
)

// Sentinel errors.
var (
	// ErrUnknownOrientation is returned for an orientation token other than H or V.
	ErrUnknownOrientation = errors.New("dataset: unknown orientation")

	// ErrMalformedLine is returned for a line that cannot be parsed.
	ErrMalformedLine = errors.New("dataset: malformed line")

	// ErrUnknownID is returned when a submission references a photo the
	// collection does not contain.
	ErrUnknownID = errors.New("dataset: unknown photo id")

	// ErrLocked is returned when the output file stays locked by another
	// writer for longer than LockTimeout.
	ErrLocked = errors.New("dataset: output file is locked")
)

// DefaultOutput is the submission path used when none is given.
const DefaultOutput = "submission.txt"

// Lock acquisition policy for WriteFile.
const (
	LockTimeout = 3 * time.Second
	lockRetry   = 100 * time.Millisecond
)

// maxLine bounds the length of one input line.
const maxLine = 1 << 20
