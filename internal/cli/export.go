package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	registry := export.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current palette",
		Long: `Export the current palette for use in other tools.

Formats: ` + strings.Join(registry.List(), ", ") + `

Examples:
  # Print CSS custom properties
  colourcraft export

  # Write a Tailwind config snippet
  colourcraft export -f tailwind -o tailwind.config.js

  # Save a PNG strip
  colourcraft export -f png -o palette.png`,
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

			data, exporter, err := registry.Render(strings.ToLower(format), st.Palette)
			if err != nil {
				return err
			}

			if output == "" {
				if exporter.Binary() {
					return fmt.Errorf("%s export needs --output (e.g. -o %s)", exporter.Name(), exporter.Filename())
				}
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil { // #nosec G306 - exported palettes are meant to be shared
				return fmt.Errorf("failed to write output file: %w", err)
			}
			a.logger.Info("palette exported", "format", exporter.Name(), "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "css", "export format ("+strings.Join(registry.List(), ", ")+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
