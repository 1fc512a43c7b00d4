package store

import (
	"strings"
	"time"

	"github.com/jmylchreest/colourcraft/internal/palette"
)

// SavedPalette is a palette the user chose to keep.
type SavedPalette struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UID       string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Colours   string    `gorm:"not null" json:"colours"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Palette decodes the stored colours.
func (s SavedPalette) Palette() (palette.Palette, error) {
	return palette.FromHex(strings.Fields(s.Colours))
}

// ShortID returns the first eight characters of the UID.
func (s SavedPalette) ShortID() string {
	if len(s.UID) < 8 {
		return s.UID
	}
	return s.UID[:8]
}

// Session holds the working palette and lock mask between invocations.
// There is only ever one row.
type Session struct {
	ID        uint `gorm:"primarykey"`
	Colours   string
	Locks     string `gorm:"size:5"`
	UpdatedAt time.Time
}

const sessionID = 1

func encodeLocks(m palette.LockMask) string {
	var b strings.Builder
	for _, locked := range m {
		if locked {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func decodeLocks(s string) palette.LockMask {
	var m palette.LockMask
	for i := range min(len(s), palette.Size) {
		m[i] = s[i] == '1'
	}
	return m
}
