package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/slideshow/dataset"
	"github.com/katalvlaran/slideshow/photo"
)

func (c *cli) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <input> <submission>",
		Short: "Validate a submission against its input and print its score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			photos, err := dataset.ReadFile(args[0])
			if err != nil {
				return err
			}
			ids, err := dataset.ReadSubmissionFile(args[1])
			if err != nil {
				return err
			}
			slides, err := dataset.Resolve(ids, photos)
			if err != nil {
				return err
			}
			printScore(cmd, photo.SequenceScore(slides), photo.SequenceMaxScore(slides))
			return nil
		},
	}
}
