package dataset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/katalvlaran/slideshow/photo"
)

// WriteSubmission validates slides with photo.ValidateSequence and writes
// them in submission format. Nothing is written when validation fails.
func WriteSubmission(w io.Writer, slides []photo.Photo) error {
	if err := photo.ValidateSequence(slides); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(slides))
	for _, s := range slides {
		fmt.Fprintln(bw, s.ID)
	}
	return bw.Flush()
}

// WriteFile writes a submission to path. The slides are validated before
// the file is touched; the write holds an exclusive lock on path+".lock"
// and replaces path atomically through a temporary file.
func WriteFile(path string, slides []photo.Photo) error {
	if err := photo.ValidateSequence(slides); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), LockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLocked, path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSubmission(tmp, slides); err != nil {
		tmp.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	return nil
}
