package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/slideshow/internal/config"
	"github.com/katalvlaran/slideshow/internal/logging"
)

// cli owns the command tree and the viper instance its flags are bound to.
type cli struct {
	root       *cobra.Command
	v          *viper.Viper
	configPath string
}

func newCLI() *cli {
	c := &cli{v: viper.New()}
	c.root = &cobra.Command{
		Use:   "slideshow",
		Short: "Build high-scoring photo slideshows",
		Long: `slideshow orders tagged photos into a slideshow maximizing the sum of
min(|A∩B|, |A\B|, |B\A|) over adjacent slides.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (SLIDESHOW_*, e.g. SLIDESHOW_ARRANGE_SEED)
  3. YAML file given with --config
  4. Built-in defaults (see 'slideshow config')`,
		SilenceUsage: true,
	}

	flags := c.root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "YAML configuration file")
	flags.String("log-level", "info", "log level (debug|info|warn|error)")
	flags.String("log-format", logging.FormatText, "log format (text|json)")
	_ = c.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("log.format", flags.Lookup("log-format"))

	c.root.AddCommand(c.runCommand(), c.scoreCommand(), c.configCommand())
	return c
}

// load resolves the effective configuration.
func (c *cli) load() (config.Config, error) {
	return config.Load(c.v, c.configPath)
}

// logger builds the run logger, tagged with a fresh run id, writing to the
// command's stderr.
func (c *cli) logger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	return log.With(slog.String("run_id", uuid.NewString())), nil
}

func printScore(cmd *cobra.Command, score, maxScore int) {
	fmt.Fprintf(cmd.OutOrStdout(), "# Total Score = %d / %d\n", score, maxScore)
}
