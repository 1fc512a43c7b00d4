package harmony

import (
	"fmt"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/palette"
	"github.com/jmylchreest/colourcraft/internal/seed"
)

// Lightness bands, one swatch drawn from each: dark, low-mid, mid, high-mid, light.
var lightnessBands = [palette.Size][2]int{
	{25, 40},
	{40, 55},
	{50, 65},
	{60, 75},
	{75, 88},
}

const (
	baseSatMin   = 55
	baseSatMax   = 90
	satJitter    = 15
	satClampMin  = 20
	satClampMax  = 100
	monoSatMin   = 30
	monoSatMax   = 95
	complementJ  = 15
	analogousGap = 15
)

// Generator produces harmony palettes from an injected random source.
type Generator struct {
	src seed.Source
}

// NewGenerator creates a Generator. A nil src uses a randomly seeded source.
func NewGenerator(src seed.Source) *Generator {
	return &Generator{src: seed.OrRandom(src)}
}

// Generate returns five unlocked colours for mode. Applying a lock mask is
// the caller's job (see palette.Merge).
func (g *Generator) Generate(mode Mode) (palette.Palette, error) {
	var p palette.Palette
	for i, sw := range g.Swatches(mode) {
		rgb, err := sw.RGB()
		if err != nil {
			return p, fmt.Errorf("slot %d: %w", i+1, err)
		}
		p[i] = rgb
	}
	return p, nil
}

// Swatches returns the HSL values behind a generated palette, before
// conversion to 8-bit RGB.
func (g *Generator) Swatches(mode Mode) [palette.Size]colour.HSL {
	baseH := g.src.IntN(360)
	baseS := seed.Between(g.src, baseSatMin, baseSatMax)

	var lightness [palette.Size]int
	for i, band := range lightnessBands {
		lightness[i] = seed.Between(g.src, band[0], band[1])
	}
	g.shuffle(lightness[:])

	hues := g.hues(mode, baseH)

	var out [palette.Size]colour.HSL
	for i := range out {
		var s int
		if mode == Monochromatic {
			s = seed.Between(g.src, monoSatMin, monoSatMax)
		} else {
			s = clamp(baseS+seed.Between(g.src, -satJitter, satJitter), satClampMin, satClampMax)
		}
		out[i] = colour.HSL{H: float64(hues[i]), S: float64(s), L: float64(lightness[i])}
	}
	return out
}

// hues derives the five hues for mode from baseH. Unknown modes are random.
func (g *Generator) hues(mode Mode, baseH int) [palette.Size]int {
	var offsets [palette.Size]int
	switch mode {
	case Complementary:
		offsets = [palette.Size]int{0, 0, 180, 180, seed.Between(g.src, -complementJ, complementJ)}
	case Analogous:
		offsets = [palette.Size]int{-2 * analogousGap, -analogousGap, 0, analogousGap, 2 * analogousGap}
	case Triadic:
		offsets = [palette.Size]int{0, 0, 120, 120, 240}
	case SplitComplementary:
		offsets = [palette.Size]int{0, 0, 150, 210, 180}
	case Monochromatic:
		// all offsets zero
	default:
		var hues [palette.Size]int
		for i := range hues {
			hues[i] = g.src.IntN(360)
		}
		return hues
	}

	var hues [palette.Size]int
	for i, off := range offsets {
		hues[i] = wrapHue(baseH + off)
	}
	return hues
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(xs []int) {
	for i := len(xs) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
