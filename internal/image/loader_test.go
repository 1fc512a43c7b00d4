package image

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/seed"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	pngPath := filepath.Join(dir, "red.png")
	writePNG(t, pngPath, solid(8, 4, color.RGBA{R: 255, A: 255}))

	bmpPath := filepath.Join(dir, "blue.bmp")
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, solid(3, 3, color.RGBA{B: 255, A: 255})); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	if err := os.WriteFile(bmpPath, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	textPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(textPath, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantW   int
		wantErr bool
	}{
		{"png", pngPath, 8, false},
		{"bmp", bmpPath, 3, false},
		{"empty path", "", 0, true},
		{"missing", filepath.Join(dir, "nope.png"), 0, true},
		{"directory", dir, 0, true},
		{"not an image", textPath, 0, true},
	}

	loader := NewFileLoader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := loader.Load(ctx, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && img.Bounds().Dx() != tt.wantW {
				t.Errorf("Load() width = %d, want %d", img.Bounds().Dx(), tt.wantW)
			}
		})
	}
}

func TestSmartLoaderURL(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(2, 2, color.RGBA{G: 255, A: 255})); err != nil {
		t.Fatal(err)
	}

	var gotURL string
	loader := NewSmartLoader().WithFetcher(func(_ context.Context, url string) ([]byte, error) {
		gotURL = url
		return buf.Bytes(), nil
	})

	img, err := loader.Load(context.Background(), "https://example.com/green.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotURL != "https://example.com/green.png" {
		t.Errorf("fetcher called with %q", gotURL)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("width = %d, want 2", img.Bounds().Dx())
	}

	failing := NewSmartLoader().WithFetcher(func(context.Context, string) ([]byte, error) {
		return nil, errors.New("boom")
	})
	if _, err := failing.Load(context.Background(), "https://example.com/x.png"); err == nil {
		t.Error("Load() should surface fetch errors")
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.png")
	writePNG(t, good, solid(1, 1, color.Black))
	bad := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(bad, []byte("text"), 0o600); err != nil {
		t.Fatal(err)
	}

	for path, wantErr := range map[string]bool{
		good:                        false,
		dir:                         false,
		"https://example.com/a.png": false,
		bad:                         true,
		"":                          true,
		filepath.Join(dir, "x.png"): true,
	} {
		if err := ValidateImagePath(path); (err != nil) != wantErr {
			t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", path, err, wantErr)
		}
	}
}

func TestScanAndResolve(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.WEBP", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("found %v, want 3 images", files)
	}

	a, err := ResolveImagePath(dir, seed.NewSource(9))
	if err != nil {
		t.Fatalf("ResolveImagePath() error = %v", err)
	}
	b, _ := ResolveImagePath(dir, seed.NewSource(9))
	if a != b {
		t.Errorf("same seed picked %s and %s", a, b)
	}

	if got, _ := ResolveImagePath("https://example.com/x.png", nil); got != "https://example.com/x.png" {
		t.Errorf("URL resolved to %q", got)
	}

	empty := t.TempDir()
	if _, err := ScanDirectoryForImages(empty); err == nil {
		t.Error("empty directory should be an error")
	}
	if _, err := SelectImage(nil, nil); err == nil {
		t.Error("SelectImage(nil) should fail")
	}
}

func TestSample(t *testing.T) {
	samples, err := Sample(solid(200, 50, color.RGBA{R: 10, G: 20, B: 30, A: 255}), DefaultSampleSize)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(samples) != DefaultSampleSize*DefaultSampleSize {
		t.Fatalf("got %d samples, want %d", len(samples), DefaultSampleSize*DefaultSampleSize)
	}
	want := colour.RGB{R: 10, G: 20, B: 30}
	for i, s := range samples {
		if s != want {
			t.Fatalf("sample %d = %v, want %v", i, s, want)
		}
	}

	if _, err := Sample(nil, 8); !errors.Is(err, colour.ErrInvalidInput) {
		t.Errorf("Sample(nil) error = %v", err)
	}
	if _, err := Sample(solid(1, 1, color.White), 0); !errors.Is(err, colour.ErrInvalidInput) {
		t.Errorf("Sample(size 0) error = %v", err)
	}
	if _, err := Sample(image.NewRGBA(image.Rect(0, 0, 0, 0)), 8); !errors.Is(err, colour.ErrInvalidInput) {
		t.Errorf("Sample(empty) error = %v", err)
	}
}

func TestSampleKeepsColourOfTranslucentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 128})
		}
	}

	samples, err := Sample(img, 4)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(samples) != 16 {
		t.Fatalf("len(samples) = %d, want 16", len(samples))
	}
	for _, s := range samples {
		if s.R < 254 || s.G > 1 || s.B > 1 {
			t.Fatalf("50%% alpha red sample = %v, want about rgb(255, 0, 0)", s)
		}
	}
}

func TestSampleTransparentIsBlack(t *testing.T) {
	samples, err := Sample(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 2)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	for _, s := range samples {
		if s != colour.Black {
			t.Fatalf("transparent sample = %v, want black", s)
		}
	}
}
