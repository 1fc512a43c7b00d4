package colour

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColourFormat selects a textual representation of a colour.
type ColourFormat string

const (
	FormatHex ColourFormat = "hex"
	FormatRGB ColourFormat = "rgb"
	FormatHSL ColourFormat = "hsl"
)

// ValidFormats returns the supported colour formats.
func ValidFormats() []ColourFormat {
	return []ColourFormat{FormatHex, FormatRGB, FormatHSL}
}

// ParseColourFormat converts a string to a ColourFormat.
func ParseColourFormat(s string) (ColourFormat, error) {
	switch f := ColourFormat(strings.ToLower(s)); f {
	case FormatHex, FormatRGB, FormatHSL:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown colour format %q (valid: hex, rgb, hsl)", ErrInvalidInput, s)
}

// Format renders c for copying. Hex is uppercase, as shown on swatches.
func Format(c RGB, f ColourFormat) string {
	switch f {
	case FormatRGB:
		return c.String()
	case FormatHSL:
		return RGBToHSL(c).String()
	default:
		return strings.ToUpper(c.Hex())
	}
}

// PerceptualDistance returns the CIEDE2000 difference between two colours.
// Values under ~2 are hard to tell apart.
func PerceptualDistance(a, b RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
