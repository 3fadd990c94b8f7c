package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/slideshow/photo"
)

// Read parses a photo collection.
//
// Errors: ErrUnknownOrientation, ErrMalformedLine (a line with no tag
// count, or a blank line followed by more photos), or the reader's error.
func Read(r io.Reader) ([]photo.Photo, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	if !sc.Scan() {
		return nil, sc.Err()
	}

	var (
		out   []photo.Photo
		blank int // line number of a pending blank line, 0 if none
		line  = 1
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if blank == 0 {
				blank = line
			}
			continue
		}
		if blank != 0 {
			return nil, fmt.Errorf("%w: line %d is blank", ErrMalformedLine, blank)
		}

		p, err := parsePhoto(len(out), fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	return out, nil
}

func parsePhoto(id int, fields []string) (photo.Photo, error) {
	if len(fields) < 2 {
		return photo.Photo{}, fmt.Errorf("%w: %q", ErrMalformedLine, strings.Join(fields, " "))
	}
	var o photo.Orientation
	switch fields[0] {
	case "H":
		o = photo.Horizontal
	case "V":
		o = photo.Vertical
	default:
		return photo.Photo{}, fmt.Errorf("%w: %q", ErrUnknownOrientation, fields[0])
	}
	return photo.New(id, o, fields[2:]), nil
}

// ReadFile parses the photo collection stored at path.
func ReadFile(path string) ([]photo.Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	photos, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return photos, nil
}
