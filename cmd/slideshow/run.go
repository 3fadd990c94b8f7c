package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/slideshow"
	"github.com/katalvlaran/slideshow/dataset"
	"github.com/katalvlaran/slideshow/report"
)

func (c *cli) runCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input>",
		Short: "Build a slideshow and write the submission",
		Long: `Read a photo collection, build the slideshow, print its score and write
the submission file. With --plot a diagnostic workbook is written next to
the submission as <out>.xlsx.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringP("out", "o", dataset.DefaultOutput, "submission path")
	flags.Bool("plot", false, "also write a diagnostic workbook")
	flags.Int("workers", runtime.GOMAXPROCS(0), "buckets optimized in parallel in the second pass")
	_ = c.v.BindPFlag("output", flags.Lookup("out"))
	_ = c.v.BindPFlag("plot", flags.Lookup("plot"))
	_ = c.v.BindPFlag("arrange.workers", flags.Lookup("workers"))
	return cmd
}

func (c *cli) run(cmd *cobra.Command, input string) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	log, err := c.logger(cmd, cfg)
	if err != nil {
		return err
	}

	photos, err := dataset.ReadFile(input)
	if err != nil {
		return err
	}
	log.Info("photos loaded", slog.String("input", input), slog.Int("count", len(photos)))

	opts := cfg.Options()
	opts.Logger = log
	res, err := slideshow.Create(photos, opts)
	if err != nil {
		return fmt.Errorf("create slideshow: %w", err)
	}
	printScore(cmd, res.Score, res.MaxScore)

	if err := dataset.WriteFile(cfg.Output, res.Slides); err != nil {
		return err
	}
	log.Info("submission written", slog.String("path", cfg.Output), slog.Int("slides", len(res.Slides)))

	if cfg.Plot {
		path := cfg.Output + ".xlsx"
		if err := report.WriteFile(path, res.Slides); err != nil {
			return err
		}
		log.Info("report written", slog.String("path", path))
	}
	return nil
}
