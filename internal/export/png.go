package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/colourcraft/internal/palette"
)

const (
	// SwatchWidth is the width of one swatch in the PNG strip.
	SwatchWidth = 100
	// StripHeight is the height of the PNG strip.
	StripHeight = 100
)

// PNGExporter draws the palette as a horizontal strip of swatches.
type PNGExporter struct{}

// NewPNG returns the PNG strip exporter.
func NewPNG() *PNGExporter {
	return &PNGExporter{}
}

// Name returns the format name.
func (e *PNGExporter) Name() string { return "png" }

// Description returns the format description.
func (e *PNGExporter) Description() string { return "500x100 PNG strip of the five swatches" }

// Filename returns the default output file name.
func (e *PNGExporter) Filename() string { return "colourcraft-palette.png" }

// Binary is true; PNG data is never written to a terminal.
func (e *PNGExporter) Binary() bool { return true }

// Generate encodes p as a PNG.
func (e *PNGExporter) Generate(p palette.Palette) ([]byte, error) {
	img := Strip(p)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Strip returns the swatch strip as an image.
func Strip(p palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SwatchWidth*palette.Size, StripHeight))
	for i, c := range p {
		r := image.Rect(i*SwatchWidth, 0, (i+1)*SwatchWidth, StripHeight)
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}
