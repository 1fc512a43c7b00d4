package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/store"
)

func newSavedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved palettes",
		Long: fmt.Sprintf(`Save the working palette for later and load it back.

Up to %d palettes are kept; saving more drops the oldest. Palettes are
referenced by ID or any unique prefix of it.`, store.MaxSaved),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved palettes, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withStore(func(db *store.Store) error {
					list, err := db.List(cmd.Context())
					if err != nil {
						return err
					}
					if len(list) == 0 {
						_, err := fmt.Fprintln(cmd.OutOrStdout(), "No saved palettes.")
						return err
					}

					table := NewTable([]string{"ID", "SAVED", "COLOURS"})
					for _, sp := range list {
						table.AddRow([]string{sp.ShortID(), sp.CreatedAt.Local().Format("2006-01-02 15:04"), a.describe(sp)})
					}
					_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Save the working palette",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withStore(func(db *store.Store) error {
					st, err := db.LoadState(cmd.Context())
					if err != nil {
						return err
					}
					saved, err := db.Save(cmd.Context(), st.Palette)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved palette %s\n", saved.ShortID())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "load <id>",
			Short: "Replace the working palette with a saved one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(db *store.Store) error {
					saved, err := db.Get(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					p, err := saved.Palette()
					if err != nil {
						return fmt.Errorf("saved palette %s is corrupt: %w", saved.ShortID(), err)
					}
					st, err := db.LoadState(cmd.Context())
					if err != nil {
						return err
					}
					next := st.Replace(p)
					if err := db.SaveState(cmd.Context(), next); err != nil {
						return err
					}
					return writeState(cmd.OutOrStdout(), next, "hex", a.cfg.Preview)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a saved palette",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(db *store.Store) error {
					deleted, err := db.Delete(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted palette %s\n", deleted.ShortID())
					return err
				})
			},
		},
	)

	return cmd
}

// withStore opens the store for the duration of fn.
func (a *app) withStore(fn func(db *store.Store) error) error {
	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

// describe renders a saved palette's colours, as swatches when previews are on.
func (a *app) describe(sp store.SavedPalette) string {
	p, err := sp.Palette()
	if err != nil {
		return sp.Colours
	}
	parts := make([]string, len(p))
	for i, c := range p {
		if a.cfg.Preview {
			parts[i] = colour.ColourPreview(c, 3)
		} else {
			parts[i] = c.Hex()
		}
	}
	sep := " "
	if a.cfg.Preview {
		sep = ""
	}
	return strings.Join(parts, sep)
}
