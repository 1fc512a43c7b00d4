// Package cli provides the command-line interface for colourcraft.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colourcraft/internal/config"
	"github.com/jmylchreest/colourcraft/internal/store"
	"github.com/jmylchreest/colourcraft/internal/version"
)

// app carries the settings and logger resolved once per invocation.
type app struct {
	cfg    config.Config
	logger hclog.Logger

	verbose   bool
	quiet     bool
	dbPath    string
	noPreview bool
}

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can run commands without shared state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colourcraft",
		Short: "A colour palette generator",
		Long: `colourcraft builds five-colour palettes from colour-harmony rules or by
extracting dominant colours from images.

Lock the swatches you like, regenerate the rest, check contrast between
every pair, and export the result as CSS, SCSS, Tailwind or PNG. The
working palette and lock state persist between runs.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "database file (default: $XDG_DATA_HOME/colourcraft/colourcraft.db)")
	rootCmd.PersistentFlags().BoolVar(&a.noPreview, "no-preview", false, "disable colour swatches in terminal output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newLockCmd(a),
		newShowCmd(a),
		newGetCmd(a),
		newExtractCmd(a),
		newExportCmd(a),
		newContrastCmd(a),
		newSavedCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration (environment first, then flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := hclog.Info
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colourcraft",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if a.noPreview || !isTerminal(cmd.OutOrStdout()) {
		cfg.Preview = false
	}
	a.cfg = cfg

	a.logger.Debug("configuration resolved",
		"db", cfg.DBPath,
		"mode", cfg.Mode,
		"preview", cfg.Preview)
	return nil
}

// openStore opens the palette database. Callers close it.
func (a *app) openStore() (*store.Store, error) {
	st, err := store.Open(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette store: %w", err)
	}
	a.logger.Named("store").Debug("opened", "path", a.cfg.DBPath)
	return st, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
