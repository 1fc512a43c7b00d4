package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/palette"
)

const swatchWidth = 10

// writeState prints the palette with roles, lock markers and (optionally) swatches.
func writeState(w io.Writer, st palette.State, format string, preview bool) error {
	if format == formatJSON {
		data, err := palette.ToJSON(st.Palette, st.Locks)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	headers := []string{"SLOT", "ROLE", "COLOUR", "LOCK"}
	if preview {
		headers = []string{"SLOT", "ROLE", "SWATCH", "COLOUR", "LOCK"}
	}
	table := NewTable(headers)
	for i, c := range st.Palette {
		lock := ""
		if st.Locks[i] {
			lock = "locked"
		}
		row := []string{strconv.Itoa(i + 1), palette.Names[i]}
		if preview {
			row = append(row, colour.ColourPreviewWithText(c, colour.PreferredTextColour(c).Hex(), swatchWidth))
		}
		row = append(row, colour.Format(c, colour.ColourFormat(format)), lock)
		table.AddRow(row)
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

// writeColours prints a plain list of colours, one per line.
func writeColours(w io.Writer, colours []colour.RGB, format string, preview bool) error {
	for _, c := range colours {
		value := colour.Format(c, colour.ColourFormat(format))
		if preview {
			value = colour.FormatColourWithPreview(c, value, swatchWidth)
		}
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	return nil
}
