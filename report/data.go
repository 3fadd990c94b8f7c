package report

import (
	"slices"

	"github.com/katalvlaran/slideshow/photo"
)

// SizeBin counts slides with a given number of tags.
type SizeBin struct {
	Tags       int
	Horizontal int
	Combined   int
}

// Junction is the score of slides i and i+1.
type Junction struct {
	Slide    int
	Score    int
	MaxScore int
}

// Counts is the number of slides of each kind among the first k slides.
type Counts struct {
	Horizontal int
	Combined   int
}

// Loss is the cumulative lost score up to a junction, attributed to the
// kind of the junction's left slide.
type Loss struct {
	Horizontal int
	Combined   int
}

// Total is Horizontal + Combined.
func (l Loss) Total() int { return l.Horizontal + l.Combined }

// Data holds every series of the report.
type Data struct {
	Slides   int
	Score    int
	MaxScore int

	Sizes     []SizeBin  // sorted by Tags
	Junctions []Junction // len(slides)-1 entries
	Counts    []Counts   // len(slides)+1 entries, starting at zero
	Loss      []Loss     // one entry per junction plus the initial zero
}

// Compute derives the report series from slides.
func Compute(slides []photo.Photo) Data {
	d := Data{
		Slides:   len(slides),
		Score:    photo.SequenceScore(slides),
		MaxScore: photo.SequenceMaxScore(slides),
		Counts:   make([]Counts, 1, len(slides)+1),
		Loss:     make([]Loss, 1, max(len(slides), 1)),
	}

	bins := make(map[int]*SizeBin)
	for _, s := range slides {
		b, ok := bins[s.Len()]
		if !ok {
			b = &SizeBin{Tags: s.Len()}
			bins[s.Len()] = b
		}
		c := d.Counts[len(d.Counts)-1]
		if s.Orientation == photo.Combined {
			b.Combined++
			c.Combined++
		} else {
			b.Horizontal++
			c.Horizontal++
		}
		d.Counts = append(d.Counts, c)
	}
	for _, b := range bins {
		d.Sizes = append(d.Sizes, *b)
	}
	slices.SortFunc(d.Sizes, func(a, b SizeBin) int { return a.Tags - b.Tags })

	for i := 1; i < len(slides); i++ {
		left, right := slides[i-1], slides[i]
		j := Junction{Slide: i - 1, Score: photo.Score(left, right), MaxScore: photo.MaxScore(left, right)}
		d.Junctions = append(d.Junctions, j)

		l := d.Loss[len(d.Loss)-1]
		if left.Orientation == photo.Combined {
			l.Combined += j.MaxScore - j.Score
		} else {
			l.Horizontal += j.MaxScore - j.Score
		}
		d.Loss = append(d.Loss, l)
	}
	return d
}
