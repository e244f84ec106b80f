package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackview/pkg/pipeline"
)

// renderCommand creates the render command, the one-shot path from a
// stack file to visual output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		flagVals   layoutFlagValues
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [stack.toml]",
		Short: "Render a stackup cross-section diagram",
		Long: `Render a stackup cross-section diagram.

The render command reads a stackup definition (TOML or JSON), computes the
cross-section layout and writes the rendered output. The default output is an
SVG next to the input file; PNG and PDF output require rsvg-convert.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.StackPath = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := applyLayoutFlags(&opts, flagVals); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")

	// Layout flags
	addLayoutFlags(cmd, &opts, &flagVals)

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "title drawn above the diagram")
	cmd.Flags().Float64Var(&opts.SVGScale, "svg-scale", 0, "SVG pixels per millimeter (default 4)")
	cmd.Flags().Float64Var(&opts.PNGScale, "png-scale", 0, "PNG raster scale factor (default 2)")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "compact JSON output")

	return cmd
}

// runRender executes the full pipeline and writes artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering stackup...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, d := range result.Layout.Diagnostics {
		printWarning("%s: %s", d.Code, d.Message)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.StackPath,
		output:    output,
		layers:    result.Stats.LayerCount,
		callouts:  result.Stats.CalloutCount,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}
