package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/colour"
)

func newLockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lock <slot>...",
		Short: "Toggle the lock on one or more swatches",
		Long: `Toggle locks by slot number (1-5). Locked swatches survive generate.

Examples:
  # Lock the first and third swatch
  colourcraft lock 1 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := make([]int, len(args))
			for i, arg := range args {
				slot, err := parseSlot(arg)
				if err != nil {
					return err
				}
				slots[i] = slot
			}

			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			st, err := db.LoadState(cmd.Context())
			if err != nil {
				return err
			}
			for _, slot := range slots {
				if st, err = st.ToggleLock(slot); err != nil {
					return err
				}
			}
			if err := db.SaveState(cmd.Context(), st); err != nil {
				return err
			}

			return writeState(cmd.OutOrStdout(), st, "hex", a.cfg.Preview)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	format := &formatValue{format: "hex", allowJSON: true}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			st, err := db.LoadState(cmd.Context())
			if err != nil {
				return err
			}
			return writeState(cmd.OutOrStdout(), st, format.format, a.cfg.Preview)
		},
	}

	cmd.Flags().VarP(format, "format", "f", "output format (hex, rgb, hsl, json)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	format := &formatValue{format: "hex"}

	cmd := &cobra.Command{
		Use:   "get <slot>",
		Short: "Print one swatch in a given format",
		Long: `Print a single swatch, ready to paste.

Examples:
  colourcraft get 2 -f hsl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}

			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			st, err := db.LoadState(cmd.Context())
			if err != nil {
				return err
			}

			c := st.Palette[slot]
			_, err = fmt.Fprintln(cmd.OutOrStdout(), colour.Format(c, colour.ColourFormat(format.format)))
			return err
		},
	}

	cmd.Flags().VarP(format, "format", "f", "colour format (hex, rgb, hsl)")
	return cmd
}
