package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/palette"
)

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast",
		Short: "Show WCAG contrast for every pair of swatches",
		Long: `List the contrast ratio of every pair of swatches with the WCAG 2.x
grades it passes: AA Large (3:1), AA (4.5:1) and AAA (7:1). DELTA-E is the
CIEDE2000 perceptual difference between the pair.`,
		Args: cobra.NoArgs,
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
			return writeContrast(cmd.OutOrStdout(), st.Palette)
		},
	}
}

func writeContrast(w io.Writer, p palette.Palette) error {
	r := lipgloss.NewRenderer(w)
	pass := r.NewStyle().Foreground(lipgloss.Color("#10b981")).Bold(true)
	fail := r.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	badge := func(ok bool) string {
		if ok {
			return pass.Render("pass")
		}
		return fail.Render("fail")
	}

	table := NewTable([]string{"PAIR", "COLOURS", "RATIO", "AA-LARGE", "AA", "AAA", "DELTA-E"})
	for _, pc := range palette.ContrastPairs(p) {
		table.AddRow([]string{
			fmt.Sprintf("%d-%d", pc.I+1, pc.J+1),
			pc.A.Hex() + " " + pc.B.Hex(),
			fmt.Sprintf("%.2f:1", pc.Ratio),
			badge(pc.Grade.AALarge),
			badge(pc.Grade.AA),
			badge(pc.Grade.AAA),
			fmt.Sprintf("%.1f", pc.Distance),
		})
	}
	_, err := io.WriteString(w, table.Render())
	return err
}
