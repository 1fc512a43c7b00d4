package image

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/colourcraft/internal/colour"
)

// DefaultSampleSize is the edge length of the sampling canvas.
const DefaultSampleSize = 64

// Sample scales img onto a size x size canvas and returns every pixel in
// row-major order. Colours are un-premultiplied, so a semi-transparent pixel
// keeps its colour; fully transparent pixels come back black.
func Sample(img image.Image, size int) ([]colour.RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", colour.ErrInvalidInput)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: sample size must be positive, got %d", colour.ErrInvalidInput, size)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", colour.ErrInvalidInput)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	samples := make([]colour.RGB, 0, size*size)
	for y := range size {
		for x := range size {
			off := dst.PixOffset(x, y)
			samples = append(samples, colour.RGB{R: dst.Pix[off], G: dst.Pix[off+1], B: dst.Pix[off+2]})
		}
	}
	return samples, nil
}
