// Package config is for app wide settings that are unmarshalled
// from Viper (see: cmd/motif)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/liserjrqlxue/motif/pkg/motif"
)

// EnvPrefix of environment overrides, MOTIF_TRIALS=2000
const EnvPrefix = "MOTIF"

// PlotConfig settings of the gonum plots
type PlotConfig struct {
	// score of every trial and best so far
	Trace string `mapstructure:"trace"`

	// histogram of trial scores
	Hist string `mapstructure:"hist"`

	// per column entropy of the result
	Entropy string `mapstructure:"entropy"`

	// inches
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// the input file, "-" for stdin
	Input string `mapstructure:"input"`

	// the motif output, "-" for stdout
	Output string `mapstructure:"output"`

	// optional BED-like output of motif positions
	Bed string `mapstructure:"bed"`

	// motif length, 0 takes k from the input header
	K int `mapstructure:"k"`

	// randomized search trials
	Trials int `mapstructure:"trials"`

	// goroutines for the randomized search, 1 runs the trials sequentially
	Workers int `mapstructure:"workers"`

	// random seed, the clock when not set
	Seed int64 `mapstructure:"seed"`

	// hamming or entropy, empty keeps the default of the search
	Scorer string `mapstructure:"scorer"`

	// append the score after the motifs
	PrintScore bool `mapstructure:"print-score"`

	// mismatches for enumerate
	D int `mapstructure:"d"`

	Plot PlotConfig `mapstructure:"plot"`
}

// SetDefaults registers the defaults on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "-")
	v.SetDefault("output", "-")
	v.SetDefault("trials", 1000)
	v.SetDefault("workers", 1)
	v.SetDefault("plot.width", 6.0)
	v.SetDefault("plot.height", 4.0)
}

// New returns a viper instance reading MOTIF_* environment
// variables and, if settings is not empty, a settings file
func New(settings string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}
	return v, nil
}

// NewConfig returns a new Config struct populated by
// Viper settings and validated
func NewConfig(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return c, c.Validate()
}

// Validate rejects values no search accepts
func (c Config) Validate() error {
	if c.K < 0 {
		return fmt.Errorf("%w: k must not be negative, got %d", motif.ErrInvalidInput, c.K)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", motif.ErrInvalidInput, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", motif.ErrInvalidInput, c.Workers)
	}
	if c.D < 0 {
		return fmt.Errorf("%w: d must not be negative, got %d", motif.ErrInvalidInput, c.D)
	}
	if c.Scorer != "" {
		if _, err := motif.ParseScorer(c.Scorer); err != nil {
			return err
		}
	}
	return nil
}

// ScorerOrDefault returns the configured scorer, 0 for the search default
func (c Config) ScorerOrDefault() motif.Scorer {
	s, _ := motif.ParseScorer(c.Scorer)
	return s
}
