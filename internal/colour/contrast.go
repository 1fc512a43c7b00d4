package colour

import "math"

// TextThreshold is the luminance above which dark text is preferred.
const TextThreshold = 0.179

// WCAG 2.0 contrast thresholds.
const (
	ContrastAALarge = 3.0
	ContrastAA      = 4.5
	ContrastAAA     = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	return 0.2126*linearise(c.R) + 0.7152*linearise(c.G) + 0.0722*linearise(c.B)
}

// linearise applies the piecewise sRGB gamma expansion to one channel.
func linearise(ch uint8) float64 {
	v := float64(ch) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is black against white.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PreferredTextColour returns Black or White, whichever reads better on bg.
func PreferredTextColour(bg RGB) RGB {
	if Luminance(bg) > TextThreshold {
		return Black
	}
	return White
}

// ContrastGrade records which WCAG levels a contrast ratio passes.
type ContrastGrade struct {
	AALarge bool `json:"aa_large"`
	AA      bool `json:"aa"`
	AAA     bool `json:"aaa"`
}

// Grade evaluates a contrast ratio against the WCAG thresholds.
func Grade(ratio float64) ContrastGrade {
	return ContrastGrade{
		AALarge: ratio >= ContrastAALarge,
		AA:      ratio >= ContrastAA,
		AAA:     ratio >= ContrastAAA,
	}
}
