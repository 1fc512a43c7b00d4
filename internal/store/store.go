// Package store persists saved palettes and the working session in SQLite.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmylchreest/colourcraft/internal/palette"
	"github.com/jmylchreest/colourcraft/internal/util"
)

// MaxSaved is the number of saved palettes kept; older ones are pruned.
const MaxSaved = 50

var (
	// ErrNotFound is returned when no saved palette matches a reference.
	ErrNotFound = errors.New("saved palette not found")
	// ErrAmbiguous is returned when an ID prefix matches more than one palette.
	ErrAmbiguous = errors.New("saved palette reference is ambiguous")
)

// Store wraps the database connection.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	dir, err := util.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "colourcraft.db"), nil
}

// Open connects to the database at path, creating it and running migrations
// as needed. An empty path uses DefaultPath.
func Open(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&SavedPalette{}, &Session{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores p and prunes anything beyond the newest MaxSaved.
func (s *Store) Save(ctx context.Context, p palette.Palette) (SavedPalette, error) {
	saved := SavedPalette{
		UID:     uuid.NewString(),
		Colours: p.String(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&saved).Error; err != nil {
			return err
		}

		var ids []uint
		if err := tx.Model(&SavedPalette{}).Order("id DESC").Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) <= MaxSaved {
			return nil
		}
		return tx.Delete(&SavedPalette{}, ids[MaxSaved:]).Error
	})
	if err != nil {
		return SavedPalette{}, fmt.Errorf("failed to save palette: %w", err)
	}
	return saved, nil
}

// List returns saved palettes, newest first.
func (s *Store) List(ctx context.Context) ([]SavedPalette, error) {
	var out []SavedPalette
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	return out, nil
}

// Get finds a saved palette by its full UID or a unique prefix of it.
func (s *Store) Get(ctx context.Context, ref string) (SavedPalette, error) {
	ref = stripWildcards(strings.ToLower(strings.TrimSpace(ref)))
	if ref == "" {
		return SavedPalette{}, fmt.Errorf("%w: empty reference", ErrNotFound)
	}

	var matches []SavedPalette
	if err := s.db.WithContext(ctx).
		Where("uid LIKE ?", ref+"%").
		Limit(2).
		Find(&matches).Error; err != nil {
		return SavedPalette{}, fmt.Errorf("failed to look up palette %s: %w", ref, err)
	}

	switch len(matches) {
	case 0:
		return SavedPalette{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return SavedPalette{}, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
	}
}

// Delete removes the saved palette matching ref.
func (s *Store) Delete(ctx context.Context, ref string) (SavedPalette, error) {
	saved, err := s.Get(ctx, ref)
	if err != nil {
		return SavedPalette{}, err
	}
	if err := s.db.WithContext(ctx).Delete(&SavedPalette{}, saved.ID).Error; err != nil {
		return SavedPalette{}, fmt.Errorf("failed to delete palette %s: %w", saved.ShortID(), err)
	}
	return saved, nil
}

// LoadState returns the stored working state, or the default state when
// nothing has been stored yet.
func (s *Store) LoadState(ctx context.Context) (palette.State, error) {
	var row Session
	err := s.db.WithContext(ctx).First(&row, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return palette.DefaultState(), nil
	}
	if err != nil {
		return palette.State{}, fmt.Errorf("failed to load session: %w", err)
	}

	p, err := palette.FromHex(strings.Fields(row.Colours))
	if err != nil {
		return palette.State{}, fmt.Errorf("stored session is corrupt: %w", err)
	}
	return palette.State{Palette: p, Locks: decodeLocks(row.Locks)}, nil
}

// SaveState replaces the stored working state.
func (s *Store) SaveState(ctx context.Context, st palette.State) error {
	row := Session{
		ID:      sessionID,
		Colours: st.Palette.String(),
		Locks:   encodeLocks(st.Locks),
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// stripWildcards removes LIKE metacharacters; UIDs never contain them.
func stripWildcards(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
