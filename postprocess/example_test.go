package postprocess_test

import (
	"fmt"

	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/postprocess"
)

func ExampleImprove() {
	seq := []photo.Photo{
		photo.NewHorizontal(0, "a", "b", "c", "d"),
		photo.NewHorizontal(1, "w", "x", "y", "z"),
		photo.NewHorizontal(2, "c", "d", "e", "f"),
		photo.NewHorizontal(3, "w", "x", "u", "v"),
	}
	res, _ := postprocess.Improve(seq, postprocess.DefaultOptions())
	fmt.Println(photo.OriginalIDs(res.Sequence))
	fmt.Printf("score %d -> %d of %d\n", res.Before, res.After, photo.SequenceMaxScore(res.Sequence))
	// Output:
	// [3 1 2 0]
	// score 0 -> 4 of 6
}
