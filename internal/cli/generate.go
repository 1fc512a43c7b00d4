package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/harmony"
	"github.com/jmylchreest/colourcraft/internal/seed"
	"github.com/jmylchreest/colourcraft/internal/store"
)

func newGenerateCmd(a *app) *cobra.Command {
	mode := &modeValue{mode: harmony.Random}
	var seedValue int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the unlocked swatches from a harmony rule",
		Long: `Generate a new palette from a colour-harmony rule. Locked swatches keep
their colour; every other slot is replaced.

Modes: ` + joinModes() + `

Examples:
  # New random palette
  colourcraft generate

  # Triadic palette, reproducible
  colourcraft generate -m triadic --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := a.cfg.Mode
			if cmd.Flags().Changed("mode") {
				m = mode.mode
			}

			var src seed.Source
			if cmd.Flags().Changed("seed") {
				src = seed.NewSource(seedValue)
			}

			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			return runGenerate(cmd, a, db, m, src)
		},
	}

	cmd.Flags().VarP(mode, "mode", "m", "harmony mode ("+joinModes()+")")
	cmd.Flags().Int64Var(&seedValue, "seed", 0, "seed for reproducible output")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, db *store.Store, mode harmony.Mode, src seed.Source) error {
	ctx := cmd.Context()

	st, err := db.LoadState(ctx)
	if err != nil {
		return err
	}

	fresh, err := harmony.NewGenerator(src).Generate(mode)
	if err != nil {
		return fmt.Errorf("failed to generate palette: %w", err)
	}
	next := st.Apply(fresh)

	if err := db.SaveState(ctx, next); err != nil {
		return err
	}
	a.logger.Debug("palette generated", "mode", mode, "locked", st.Locks.Count())

	return writeState(cmd.OutOrStdout(), next, "hex", a.cfg.Preview)
}
