package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/colourcraft/internal/seed"
)

// KMeansQuantizer clusters sampled colours with Lloyd's k-means in RGB space.
// It runs a fixed number of iterations; there is no convergence check.
type KMeansQuantizer struct {
	src seed.Source
}

// NewKMeansQuantizer creates a quantizer drawing initial centres from src.
// A nil src uses a randomly seeded source.
func NewKMeansQuantizer(src seed.Source) *KMeansQuantizer {
	return &KMeansQuantizer{src: seed.OrRandom(src)}
}

// Extract reduces samples to k representative colours.
// Centres are returned in index order, not sorted.
func (q *KMeansQuantizer) Extract(samples []RGB, k, iterations int) ([]RGB, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to quantize", ErrInvalidInput)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidInput, k)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalidInput, iterations)
	}

	// Initial centres are drawn with replacement.
	centres := make([]RGB, k)
	for i := range centres {
		centres[i] = samples[q.src.IntN(len(samples))]
	}

	assignments := make([]int, len(samples))
	for range iterations {
		for i, p := range samples {
			assignments[i] = nearestCentre(p, centres)
		}
		centres = recalculateCentres(samples, assignments, centres)
	}

	return centres, nil
}

// nearestCentre returns the index of the closest centre by squared distance.
// Ties go to the lowest index.
func nearestCentre(p RGB, centres []RGB) int {
	best := 0
	bestDist := math.MaxInt
	for i, c := range centres {
		if d := squaredDistance(p, c); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func squaredDistance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// recalculateCentres moves each centre to the rounded mean of its members.
// A centre with no members keeps its previous value.
func recalculateCentres(samples []RGB, assignments []int, prev []RGB) []RGB {
	type sum struct{ r, g, b, n int }
	sums := make([]sum, len(prev))
	for i, p := range samples {
		s := &sums[assignments[i]]
		s.r += int(p.R)
		s.g += int(p.G)
		s.b += int(p.B)
		s.n++
	}

	next := make([]RGB, len(prev))
	for i, s := range sums {
		if s.n == 0 {
			next[i] = prev[i]
			continue
		}
		next[i] = RGB{
			R: roundedMean(s.r, s.n),
			G: roundedMean(s.g, s.n),
			B: roundedMean(s.b, s.n),
		}
	}
	return next
}

// roundedMean is round(total/n) for non-negative totals, halves rounding up.
func roundedMean(total, n int) uint8 {
	return uint8((2*total + n) / (2 * n)) // #nosec G115 -- mean of uint8 values
}
