package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in hue/saturation/lightness form, computed in floating point.
// H is in degrees [0,360); S and L are percentages [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

// Round returns the display form: hue to the nearest degree, saturation and
// lightness to the nearest percent. A hue that rounds to 360 folds to 0.
func (c HSL) Round() (h, s, l int) {
	h = int(math.Round(c.H)) % 360
	s = int(math.Round(c.S))
	l = int(math.Round(c.L))
	return h, s, l
}

// String returns the colour as "hsl(h, s%, l%)" using rounded values.
func (c HSL) String() string {
	h, s, l := c.Round()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// RGB converts back to sRGB.
func (c HSL) RGB() (RGB, error) {
	return HSLToRGB(c.H, c.S, c.L)
}

// HSLToRGB converts HSL to RGB. h is any angle in degrees and is taken mod 360;
// s and l must lie in [0,100]. Channels are rounded, not truncated.
func HSLToRGB(h, s, l float64) (RGB, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return RGB{}, fmt.Errorf("%w: hue %v is not finite", ErrInvalidInput, h)
	}
	if !(s >= 0 && s <= 100) {
		return RGB{}, fmt.Errorf("%w: saturation %v out of range [0,100]", ErrInvalidInput, s)
	}
	if !(l >= 0 && l <= 100) {
		return RGB{}, fmt.Errorf("%w: lightness %v out of range [0,100]", ErrInvalidInput, l)
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s /= 100
	l /= 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) uint8 {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
		return toChannel(v)
	}

	return RGB{R: f(0), G: f(8), B: f(4)}, nil
}

// RGBToHSL converts RGB to HSL. Achromatic colours have h=0 and s=0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	if maxVal == minVal {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxVal - minVal
	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: h * 60, S: s * 100, L: l * 100}
}

// toChannel maps a [0,1] component to [0,255] with rounding.
func toChannel(v float64) uint8 {
	x := math.Round(v * 255)
	switch {
	case x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}
