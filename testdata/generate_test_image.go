// Test image generator for trying out colour extraction by hand.
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// Five vertical bands with unequal widths, so k-means with k=5 should
	// recover each band colour and the widest band dominates.
	width := 500
	height := 300
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	bands := []struct {
		c     color.RGBA
		width int
	}{
		{color.RGBA{R: 30, G: 27, B: 75, A: 255}, 160},    // Indigo night
		{color.RGBA{R: 236, G: 72, B: 153, A: 255}, 60},   // Pink
		{color.RGBA{R: 245, G: 158, B: 11, A: 255}, 80},   // Amber
		{color.RGBA{R: 16, G: 185, B: 129, A: 255}, 100},  // Emerald
		{color.RGBA{R: 241, G: 245, B: 249, A: 255}, 100}, // Off-white
	}

	x0 := 0
	for _, band := range bands {
		for y := range height {
			for x := x0; x < x0+band.width; x++ {
				img.Set(x, y, band.c)
			}
		}
		x0 += band.width
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png")
}
