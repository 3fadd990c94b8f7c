package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/slideshow/photo"
)

// ReadSubmission parses a submission into slide ids. The header count must
// match the number of slide lines.
func ReadSubmission(r io.Reader) ([]photo.ID, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("dataset: read: %w", err)
		}
		return nil, fmt.Errorf("%w: missing slide count", ErrMalformedLine)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: slide count %q", ErrMalformedLine, sc.Text())
	}

	ids := make([]photo.ID, 0, n)
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		id, err := parseID(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(ids) != n {
		return nil, fmt.Errorf("%w: header announces %d slides, found %d", ErrMalformedLine, n, len(ids))
	}
	return ids, nil
}

func parseID(fields []string) (photo.ID, error) {
	if len(fields) > 2 {
		return photo.ID{}, fmt.Errorf("%w: %d ids on one slide", ErrMalformedLine, len(fields))
	}
	nums := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return photo.ID{}, fmt.Errorf("%w: id %q", ErrMalformedLine, f)
		}
		nums[i] = v
	}
	if len(nums) == 1 {
		return photo.Single(nums[0]), nil
	}
	return photo.Pair(nums[0], nums[1]), nil
}

// ReadSubmissionFile parses the submission stored at path.
func ReadSubmissionFile(path string) ([]photo.ID, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ids, err := ReadSubmission(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ids, nil
}

// Resolve rebuilds the slides of a submission from the photo collection
// it was made for. Single ids map to their photo and pairs are merged
// again; the result is checked with photo.ValidateSequence.
//
// Errors: ErrUnknownID, photo.ErrNotVertical for a pair of non-vertical
// photos, or any validation error.
func Resolve(ids []photo.ID, photos []photo.Photo) ([]photo.Photo, error) {
	byID := make(map[int]photo.Photo, len(photos))
	for _, p := range photos {
		byID[p.ID.First()] = p
	}
	lookup := func(n int) (photo.Photo, error) {
		p, ok := byID[n]
		if !ok {
			return photo.Photo{}, fmt.Errorf("%w: %d", ErrUnknownID, n)
		}
		return p, nil
	}

	slides := make([]photo.Photo, 0, len(ids))
	for i, id := range ids {
		a, err := lookup(id.First())
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		if !id.IsPair() {
			slides = append(slides, a)
			continue
		}
		b, err := lookup(id.Second())
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		c, err := photo.Merge(a, b)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
		slides = append(slides, c)
	}
	if err := photo.ValidateSequence(slides); err != nil {
		return nil, err
	}
	return slides, nil
}
