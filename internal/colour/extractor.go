package colour

import (
	"fmt"

	"github.com/jmylchreest/colourcraft/internal/seed"
)

// Quantizer reduces a set of sampled colours to a small representative set.
type Quantizer interface {
	// Extract returns k colours summarising samples after the given number
	// of refinement iterations.
	Extract(samples []RGB, k, iterations int) ([]RGB, error)
}

// Algorithm represents the quantization algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses fixed-iteration k-means clustering.
	AlgorithmKMeans Algorithm = "kmeans"
)

// Defaults matching the image extraction of the palette tool.
const (
	DefaultColourCount = 5
	DefaultIterations  = 10
	MaxColourCount     = 256
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans}
}

// NewQuantizer creates a Quantizer for the algorithm, seeded from src.
func NewQuantizer(alg Algorithm, src seed.Source) (Quantizer, error) {
	switch alg {
	case AlgorithmKMeans, "":
		return NewKMeansQuantizer(src), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// QuantizerConfig holds configuration for colour extraction.
type QuantizerConfig struct {
	Algorithm   Algorithm
	ColourCount int
	Iterations  int
}

// DefaultQuantizerConfig returns the default extraction configuration.
func DefaultQuantizerConfig() QuantizerConfig {
	return QuantizerConfig{
		Algorithm:   AlgorithmKMeans,
		ColourCount: DefaultColourCount,
		Iterations:  DefaultIterations,
	}
}

// Validate validates the extraction configuration.
func (c QuantizerConfig) Validate() error {
	if c.Algorithm != AlgorithmKMeans {
		return fmt.Errorf("%w: invalid algorithm: %s", ErrInvalidInput, c.Algorithm)
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidInput, c.ColourCount)
	}
	if c.ColourCount > MaxColourCount {
		return fmt.Errorf("%w: colour count too large: %d (maximum: %d)", ErrInvalidInput, c.ColourCount, MaxColourCount)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidInput, c.Iterations)
	}
	return nil
}
