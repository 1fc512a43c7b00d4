// Package config resolves settings from the environment before command-line
// flags are applied on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/harmony"
	"github.com/jmylchreest/colourcraft/internal/image"
)

// Environment variables read by FromEnv.
const (
	EnvDB         = "COLOURCRAFT_DB"
	EnvMode       = "COLOURCRAFT_MODE"
	EnvIterations = "COLOURCRAFT_ITERATIONS"
	EnvSampleSize = "COLOURCRAFT_SAMPLE_SIZE"
	EnvNoPreview  = "COLOURCRAFT_NO_PREVIEW"
)

// Config holds the settings shared by all commands.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath     string
	Mode       harmony.Mode
	Colours    int
	Iterations int
	SampleSize int
	// Preview enables ANSI colour swatches in terminal output.
	Preview bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:       harmony.Random,
		Colours:    colour.DefaultColourCount,
		Iterations: colour.DefaultIterations,
		SampleSize: image.DefaultSampleSize,
		Preview:    true,
	}
}

// FromEnv returns Default overlaid with any COLOURCRAFT_* variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		mode, known := harmony.ParseMode(v)
		if !known {
			return cfg, fmt.Errorf("%s: unknown harmony mode %q", EnvMode, v)
		}
		cfg.Mode = mode
	}

	var err error
	if cfg.Iterations, err = intVar(lookup, EnvIterations, cfg.Iterations); err != nil {
		return cfg, err
	}
	if cfg.SampleSize, err = intVar(lookup, EnvSampleSize, cfg.SampleSize); err != nil {
		return cfg, err
	}

	if v, ok := lookup(EnvNoPreview); ok && v != "" {
		noPreview, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvNoPreview, err)
		}
		cfg.Preview = !noPreview
	}

	return cfg, cfg.Validate()
}

func intVar(lookup func(string) (string, bool), key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// Validate checks the numeric settings.
func (c Config) Validate() error {
	qc := colour.QuantizerConfig{
		Algorithm:   colour.AlgorithmKMeans,
		ColourCount: c.Colours,
		Iterations:  c.Iterations,
	}
	if err := qc.Validate(); err != nil {
		return err
	}
	if c.SampleSize <= 0 || c.SampleSize > 1024 {
		return fmt.Errorf("%w: sample size must be in [1,1024], got %d", colour.ErrInvalidInput, c.SampleSize)
	}
	return nil
}
