// Command slideshow builds a slideshow submission from a photo collection.
//
//	slideshow run data/c_memorable_moments.txt --out submission.txt --plot
//	slideshow score data/c_memorable_moments.txt submission.txt
//	slideshow config --config slideshow.yaml
package main

import (
	"os"
)

func main() {
	if err := newCLI().root.Execute(); err != nil {
		os.Exit(1)
	}
}
