package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/pipeline"
)

// computeCommand creates the compute command for coordinate tables.
func (c *CLI) computeCommand() *cobra.Command {
	var (
		namesStr string
		output   string
		noCache  bool
	)
	opts := pipeline.TableOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute electrode coordinates",
		Long: `Compute electrode coordinates for a placement system.

Positions are derived on the unit sphere and printed as a TSV or JSON
table. By default the full 10-05 system is computed under the
Nz-T10-Iz-T9 equator, including the NAS/LPA/RPA fiducials.

Use --names to select individual electrodes (aliases like T3 or M1 are
accepted), --dim 2 for the stereographic projection, and --output to
write to a file instead of stdout.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Density = fallback(opts.Density, c.Config.Density)
			opts.Equator = fallback(opts.Equator, c.Config.Equator)
			if opts.Precision == 0 {
				opts.Precision = c.Config.Precision
			}
			if namesStr != "" {
				opts.Names = strings.Split(namesStr, ",")
			}
			return c.runCompute(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Selection flags
	cmd.Flags().StringVarP(&opts.Density, "density", "d", "", "system density: 10-20, 10-10, 10-05 (default)")
	cmd.Flags().StringVarP(&opts.Equator, "equator", "e", "", "equator convention: Nz-T10-Iz-T9 (default), Fpz-T8-Oz-T7")
	cmd.Flags().StringVarP(&namesStr, "names", "n", "", "electrode names to select (comma-separated)")
	cmd.Flags().BoolVar(&opts.DropLandmarks, "no-landmarks", false, "omit the NAS/LPA/RPA fiducials")
	cmd.Flags().BoolVar(&opts.Sort, "sort", false, "sort output by label")

	// Output flags
	cmd.Flags().IntVar(&opts.Dimensions, "dim", 0, "output dimensions: 3 (default) or 2")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: tsv (default), json")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 0, "decimal precision (default 4)")

	return cmd
}

// runCompute computes the table and writes it to the output target.
func (c *CLI) runCompute(ctx context.Context, opts pipeline.TableOptions, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	data, cacheHit, err := runner.Table(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute: %w", err)
	}
	prog.done(fmt.Sprintf("Derived %d positions", rowCount(data)))

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	density := opts.Density
	if density == "" {
		density = "10-05"
	}
	printSuccess("Computed %s coordinates", density)
	printFile(output)
	printStats(rowCount(data), cacheHit)
	return nil
}

// rowCount counts data rows in serialized output, excluding the TSV
// header. JSON output counts electrode entries instead.
func rowCount(data []byte) int {
	s := strings.TrimRight(string(data), "\n")
	if strings.HasPrefix(s, "{") {
		return strings.Count(s, `"label"`)
	}
	n := strings.Count(s, "\n")
	return n // header excluded
}
