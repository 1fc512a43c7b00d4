package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcraft/internal/colour"
	"github.com/jmylchreest/colourcraft/internal/image"
	"github.com/jmylchreest/colourcraft/internal/palette"
	"github.com/jmylchreest/colourcraft/internal/seed"
)

type extractOptions struct {
	colours    int
	iterations int
	sampleSize int
	seedMode   string
	seedValue  int64
	format     formatValue
}

func newExtractCmd(a *app) *cobra.Command {
	opts := &extractOptions{format: formatValue{format: "hex"}}

	cmd := &cobra.Command{
		Use:   "extract <image|directory|url>",
		Short: "Extract dominant colours from an image",
		Long: `Extract dominant colours from an image with k-means clustering.

The image is scaled to a small square and its pixels are clustered. With
the default of 5 colours the result replaces the working palette and clears
all locks; any other count is only printed.

A directory picks one of its images at random. HTTP(S) URLs are fetched.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Replace the palette with colours from a wallpaper
  colourcraft extract wallpaper.jpg

  # Same colours every run for the same image
  colourcraft extract --seed-mode content wallpaper.jpg

  # Print 8 colours without touching the palette
  colourcraft extract -c 8 -f rgb wallpaper.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, a, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.colours, "colours", "c", colour.DefaultColourCount, "number of colours to extract (1-256)")
	cmd.Flags().IntVar(&opts.iterations, "iterations", colour.DefaultIterations, "k-means iterations")
	cmd.Flags().IntVar(&opts.sampleSize, "sample-size", image.DefaultSampleSize, "edge length of the sampling canvas")
	cmd.Flags().StringVar(&opts.seedMode, "seed-mode", string(seed.ModeRandom), "seed mode (content, filepath, manual, random)")
	cmd.Flags().Int64Var(&opts.seedValue, "seed", 0, "seed value (implies --seed-mode manual)")
	cmd.Flags().VarP(&opts.format, "format", "f", "colour format (hex, rgb, hsl)")

	return cmd
}

func runExtract(cmd *cobra.Command, a *app, opts *extractOptions, path string) error {
	ctx := cmd.Context()
	logger := a.logger.Named("extract")

	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("colours") {
		cfg.Colours = opts.colours
	}
	if flags.Changed("iterations") {
		cfg.Iterations = opts.iterations
	}
	if flags.Changed("sample-size") {
		cfg.SampleSize = opts.sampleSize
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seedCfg, err := seedConfig(opts, flags.Changed("seed"), flags.Changed("seed-mode"))
	if err != nil {
		return err
	}

	if err := image.ValidateImagePath(path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	var pick seed.Source
	if seedCfg.Value != nil {
		pick = seed.NewSource(*seedCfg.Value)
	}
	resolved, err := image.ResolveImagePath(path, pick)
	if err != nil {
		return err
	}
	logger.Debug("loading image", "path", resolved)

	img, err := image.NewSmartLoader().Load(ctx, resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	samples, err := image.Sample(img, cfg.SampleSize)
	if err != nil {
		return fmt.Errorf("failed to sample image: %w", err)
	}

	s, err := seed.Calculate(img, resolved, seedCfg)
	if err != nil {
		return fmt.Errorf("failed to calculate seed: %w", err)
	}
	logger.Debug("clustering", "k", cfg.Colours, "iterations", cfg.Iterations, "seed_mode", seedCfg.Mode, "seed", s)

	q, err := colour.NewQuantizer(colour.AlgorithmKMeans, seed.NewSource(s))
	if err != nil {
		return err
	}
	centres, err := q.Extract(samples, cfg.Colours, cfg.Iterations)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	if len(centres) != palette.Size {
		return writeColours(cmd.OutOrStdout(), centres, opts.format.format, cfg.Preview)
	}

	p, err := palette.FromColours(centres)
	if err != nil {
		return err
	}

	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := db.LoadState(ctx)
	if err != nil {
		return err
	}
	next := st.Replace(p)
	if err := db.SaveState(ctx, next); err != nil {
		return err
	}
	logger.Info("palette replaced from image", "path", resolved)

	return writeState(cmd.OutOrStdout(), next, opts.format.format, cfg.Preview)
}

// seedConfig maps the seed flags to a seed.Config. A bare --seed implies manual mode.
func seedConfig(opts *extractOptions, seedSet, modeSet bool) (seed.Config, error) {
	mode := seed.ModeRandom
	if modeSet {
		m, err := seed.ParseMode(opts.seedMode)
		if err != nil {
			return seed.Config{}, err
		}
		mode = m
	} else if seedSet {
		mode = seed.ModeManual
	}

	cfg := seed.Config{Mode: mode}
	if seedSet {
		v := opts.seedValue
		cfg.Value = &v
	}
	if mode == seed.ModeManual && cfg.Value == nil {
		return seed.Config{}, fmt.Errorf("--seed-mode manual requires --seed")
	}
	return cfg, nil
}
