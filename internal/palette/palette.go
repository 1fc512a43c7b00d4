// Package palette models the five-swatch working palette and its lock mask.
// Values are passed and returned by copy; nothing here holds shared state.
package palette

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/colourcraft/internal/colour"
)

// Size is the number of swatches in a palette.
const Size = 5

// Names are the role names used when a palette is exported.
var Names = [Size]string{"primary", "secondary", "accent", "highlight", "muted"}

// Palette is an ordered set of five colours.
type Palette [Size]colour.RGB

// LockMask marks which palette slots are protected from regeneration.
type LockMask [Size]bool

// Default returns the palette shown before anything has been generated.
func Default() Palette {
	return Palette{
		colour.MustParseHex("#6366f1"),
		colour.MustParseHex("#ec4899"),
		colour.MustParseHex("#f59e0b"),
		colour.MustParseHex("#10b981"),
		colour.MustParseHex("#3b82f6"),
	}
}

// FromColours builds a palette from exactly Size colours.
func FromColours(colours []colour.RGB) (Palette, error) {
	var p Palette
	if len(colours) != Size {
		return p, fmt.Errorf("%w: palette needs %d colours, got %d", colour.ErrInvalidInput, Size, len(colours))
	}
	copy(p[:], colours)
	return p, nil
}

// FromHex builds a palette from exactly Size hex strings.
func FromHex(hexes []string) (Palette, error) {
	var p Palette
	if len(hexes) != Size {
		return p, fmt.Errorf("%w: palette needs %d colours, got %d", colour.ErrInvalidInput, Size, len(hexes))
	}
	for i, h := range hexes {
		c, err := colour.ParseHex(h)
		if err != nil {
			return p, fmt.Errorf("slot %d: %w", i+1, err)
		}
		p[i] = c
	}
	return p, nil
}

// Hex returns the palette as lowercase hex strings.
func (p Palette) Hex() []string {
	out := make([]string, Size)
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// String returns the hex colours separated by spaces.
func (p Palette) String() string {
	return strings.Join(p.Hex(), " ")
}

// Merge combines a freshly generated palette with the current one.
// Locked slots keep their current colour.
func Merge(current, fresh Palette, mask LockMask) Palette {
	out := fresh
	for i, locked := range mask {
		if locked {
			out[i] = current[i]
		}
	}
	return out
}

// Toggle returns a copy of the mask with slot i flipped. i is zero-based.
func (m LockMask) Toggle(i int) (LockMask, error) {
	if i < 0 || i >= Size {
		return m, fmt.Errorf("%w: slot %d out of range [1,%d]", colour.ErrInvalidInput, i+1, Size)
	}
	m[i] = !m[i]
	return m, nil
}

// Count returns the number of locked slots.
func (m LockMask) Count() int {
	n := 0
	for _, locked := range m {
		if locked {
			n++
		}
	}
	return n
}

// JSON is the serialised form of a palette with its lock mask.
type JSON struct {
	Colours []JSONColour `json:"colours"`
}

// JSONColour describes one slot.
type JSONColour struct {
	Slot   int      `json:"slot"`
	Name   string   `json:"name"`
	Hex    string   `json:"hex"`
	RGB    [3]uint8 `json:"rgb"`
	HSL    [3]int   `json:"hsl"`
	Text   string   `json:"text"`
	Locked bool     `json:"locked"`
}

// ToJSON renders the palette and mask as indented JSON.
func ToJSON(p Palette, mask LockMask) ([]byte, error) {
	doc := JSON{Colours: make([]JSONColour, Size)}
	for i, c := range p {
		h, s, l := colour.RGBToHSL(c).Round()
		doc.Colours[i] = JSONColour{
			Slot:   i + 1,
			Name:   Names[i],
			Hex:    c.Hex(),
			RGB:    [3]uint8{c.R, c.G, c.B},
			HSL:    [3]int{h, s, l},
			Text:   colour.PreferredTextColour(c).Hex(),
			Locked: mask[i],
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}
