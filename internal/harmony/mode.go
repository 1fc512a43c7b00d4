// Package harmony generates five-colour palettes from colour-wheel harmony rules.
package harmony

import (
	"slices"
	"strings"
)

// Mode selects how hues are derived from the base hue.
type Mode string

const (
	Complementary      Mode = "complementary"
	Analogous          Mode = "analogous"
	Triadic            Mode = "triadic"
	SplitComplementary Mode = "split-complementary"
	Monochromatic      Mode = "monochromatic"
	Random             Mode = "random"
)

// ValidModes returns every known mode in menu order.
func ValidModes() []Mode {
	return []Mode{Complementary, Analogous, Triadic, SplitComplementary, Monochromatic, Random}
}

// ParseMode converts a name to a Mode. Unknown names map to Random and
// report false.
func ParseMode(s string) (Mode, bool) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(ValidModes(), mode) {
		return mode, true
	}
	return Random, false
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}
