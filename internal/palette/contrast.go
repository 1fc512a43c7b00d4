package palette

import "github.com/jmylchreest/colourcraft/internal/colour"

// PairContrast reports legibility between two palette slots.
type PairContrast struct {
	I, J     int // zero-based slots, I < J
	A, B     colour.RGB
	Ratio    float64
	Grade    colour.ContrastGrade
	Distance float64 // CIEDE2000
}

// ContrastPairs evaluates every unordered pair of slots, in (i, j) order.
func ContrastPairs(p Palette) []PairContrast {
	pairs := make([]PairContrast, 0, Size*(Size-1)/2)
	for i := 0; i < Size; i++ {
		for j := i + 1; j < Size; j++ {
			ratio := colour.ContrastRatio(p[i], p[j])
			pairs = append(pairs, PairContrast{
				I:        i,
				J:        j,
				A:        p[i],
				B:        p[j],
				Ratio:    ratio,
				Grade:    colour.Grade(ratio),
				Distance: colour.PerceptualDistance(p[i], p[j]),
			})
		}
	}
	return pairs
}
