package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/pipeline"
)

// plotCommand creates the plot command for rendering 2D head maps.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		output  string
		noNames bool
		noCache bool
	)
	opts := pipeline.MapOptions{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a 2D head map",
		Long: `Render a 2D head map of electrode positions.

Positions are projected onto the plane through the head's equator and
drawn as a top view with the nose pointing up. Output is SVG by
default; use --format png for a raster image or --format dot for the
raw graphviz source.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Density = fallback(opts.Density, c.Config.Density)
			opts.Equator = fallback(opts.Equator, c.Config.Equator)
			opts.ShowNames = !noNames
			return c.runPlot(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: headmap.<format>)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	// Selection flags
	cmd.Flags().StringVarP(&opts.Density, "density", "d", "", "system density: 10-20 (default), 10-10, 10-05")
	cmd.Flags().StringVarP(&opts.Equator, "equator", "e", "", "equator convention: Nz-T10-Iz-T9 (default), Fpz-T8-Oz-T7")

	// Render flags
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&noNames, "no-names", false, "hide electrode labels")
	cmd.Flags().BoolVar(&opts.Sensors, "sensors", false, "draw filled sensor markers")

	return cmd
}

// runPlot renders the head map and writes it to the output file.
func (c *CLI) runPlot(ctx context.Context, opts pipeline.MapOptions, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering head map...")
	spinner.Start()

	data, cacheHit, err := runner.Map(ctx, opts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("plot: %w", err)
	}
	spinner.Stop()

	if output == "" {
		format := opts.Format
		if format == "" {
			format = "svg"
		}
		output = "headmap." + format
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	density := opts.Density
	if density == "" {
		density = "10-20"
	}
	printSuccess("Rendered %s head map", density)
	printFile(output)
	printStats(0, cacheHit)
	return nil
}
