// Package config loads the command line configuration from defaults, an
// optional YAML file, SLIDESHOW_* environment variables and bound flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slideshow"
	"github.com/katalvlaran/slideshow/arrange"
	"github.com/katalvlaran/slideshow/dataset"
	"github.com/katalvlaran/slideshow/photo"
	"github.com/katalvlaran/slideshow/postprocess"
	"github.com/katalvlaran/slideshow/splice"
	"github.com/katalvlaran/slideshow/vertical"
)

// EnvPrefix prefixes every environment variable, e.g. SLIDESHOW_ARRANGE_SEED.
const EnvPrefix = "SLIDESHOW"

// ErrInvalid is returned when the loaded configuration cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the effective configuration of one run.
type Config struct {
	Output  string  `mapstructure:"output" yaml:"output"`
	Plot    bool    `mapstructure:"plot" yaml:"plot"`
	Log     Log     `mapstructure:"log" yaml:"log"`
	Arrange Arrange `mapstructure:"arrange" yaml:"arrange"`
	Match   Match   `mapstructure:"match" yaml:"match"`
	Post    Post    `mapstructure:"post" yaml:"post"`
	Cache   Cache   `mapstructure:"cache" yaml:"cache"`
}

// Log selects the logger.
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Arrange tunes both arrangement passes.
type Arrange struct {
	Seed        int64   `mapstructure:"seed" yaml:"seed"`
	ShuffleProb float64 `mapstructure:"shuffle_prob" yaml:"shuffle_prob"`
	ReverseProb float64 `mapstructure:"reverse_prob" yaml:"reverse_prob"`
	Patience    int     `mapstructure:"patience" yaml:"patience"`
	Workers     int     `mapstructure:"workers" yaml:"workers"`
	Proposals   int     `mapstructure:"proposals" yaml:"proposals"`
	BuildProb   float64 `mapstructure:"build_prob" yaml:"build_prob"`
}

// Match tunes the vertical matcher.
type Match struct {
	Seed    int64 `mapstructure:"seed" yaml:"seed"`
	MaxTags int   `mapstructure:"max_tags" yaml:"max_tags"`
}

// Post tunes the final improvement.
type Post struct {
	Patience int `mapstructure:"patience" yaml:"patience"`
}

// Cache bounds the score cache.
type Cache struct {
	Capacity int `mapstructure:"capacity" yaml:"capacity"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	so := slideshow.DefaultOptions()
	return Config{
		Output: dataset.DefaultOutput,
		Log:    Log{Level: "info", Format: "text"},
		Arrange: Arrange{
			Seed:        so.Arrange.Seed,
			ShuffleProb: so.Arrange.ShuffleProb,
			ReverseProb: so.Arrange.ReverseProb,
			Patience:    so.Arrange.Patience,
			Workers:     so.Arrange.Workers,
			Proposals:   so.Arrange.Splice.Proposals,
			BuildProb:   so.Arrange.Splice.BuildProb,
		},
		Match: Match{Seed: so.MatchSeed, MaxTags: so.Match.MaxTags},
		Post:  Post{Patience: so.Post.Patience},
		Cache: Cache{Capacity: photo.DefaultCacheCapacity},
	}
}

// setDefaults registers every key so that environment variables are seen
// by Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("output", d.Output)
	v.SetDefault("plot", d.Plot)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("arrange.seed", d.Arrange.Seed)
	v.SetDefault("arrange.shuffle_prob", d.Arrange.ShuffleProb)
	v.SetDefault("arrange.reverse_prob", d.Arrange.ReverseProb)
	v.SetDefault("arrange.patience", d.Arrange.Patience)
	v.SetDefault("arrange.workers", d.Arrange.Workers)
	v.SetDefault("arrange.proposals", d.Arrange.Proposals)
	v.SetDefault("arrange.build_prob", d.Arrange.BuildProb)
	v.SetDefault("match.seed", d.Match.Seed)
	v.SetDefault("match.max_tags", d.Match.MaxTags)
	v.SetDefault("post.patience", d.Post.Patience)
	v.SetDefault("cache.capacity", d.Cache.Capacity)
}

// Load reads the configuration into v and decodes it. Flags should be
// bound to v before calling Load. An empty path skips the file.
func Load(v *viper.Viper, path string) (Config, error) {
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the configuration yields valid options.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts c into pipeline options. Loggers are left nil.
func (c Config) Options() slideshow.Options {
	return slideshow.Options{
		Arrange: arrange.Options{
			Seed:        c.Arrange.Seed,
			ShuffleProb: c.Arrange.ShuffleProb,
			ReverseProb: c.Arrange.ReverseProb,
			Splice: splice.Options{
				Proposals: c.Arrange.Proposals,
				BuildProb: c.Arrange.BuildProb,
			},
			Patience: c.Arrange.Patience,
			Workers:  c.Arrange.Workers,
		},
		Match:         vertical.Options{MaxTags: c.Match.MaxTags},
		MatchSeed:     c.Match.Seed,
		Post:          postprocess.Options{Patience: c.Post.Patience},
		CacheCapacity: c.Cache.Capacity,
	}
}

// Dump writes c as YAML.
func Dump(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: dump: %w", err)
	}
	return enc.Close()
}
