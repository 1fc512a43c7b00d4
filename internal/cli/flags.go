package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/harmony"
	"github.com/jmylchreest/colourcraft/internal/palette"
)

// modeValue is a pflag.Value accepting harmony mode names.
type modeValue struct {
	mode harmony.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return string(m.mode) }

func (m *modeValue) Set(s string) error {
	mode, known := harmony.ParseMode(s)
	if !known {
		return fmt.Errorf("unknown mode %q (valid: %s)", s, joinModes())
	}
	m.mode = mode
	return nil
}

func (m *modeValue) Type() string { return "mode" }

func joinModes() string {
	modes := harmony.ValidModes()
	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = string(mode)
	}
	return strings.Join(names, ", ")
}

// formatValue is a pflag.Value for colour formats, optionally allowing json.
type formatValue struct {
	format    string
	allowJSON bool
}

var _ pflag.Value = (*formatValue)(nil)

const formatJSON = "json"

func (f *formatValue) String() string { return f.format }

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if f.allowJSON && s == formatJSON {
		f.format = s
		return nil
	}
	cf, err := colour.ParseColourFormat(s)
	if err != nil {
		return err
	}
	f.format = string(cf)
	return nil
}

func (f *formatValue) Type() string { return "format" }

// parseSlot converts a 1-based slot argument to a zero-based index.
func parseSlot(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > palette.Size {
		return 0, fmt.Errorf("%w: slot must be a number from 1 to %d, got %q", colour.ErrInvalidInput, palette.Size, s)
	}
	return n - 1, nil
}
