package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackview/pkg/pipeline"
	"github.com/matzehuels/stackview/pkg/render/section"
)

// layoutCommand creates the layout command for computing diagram geometry
// without rendering it.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		noCache  bool
		compact  bool
		flagVals layoutFlagValues
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [stack.toml]",
		Short: "Compute the cross-section layout for a stackup",
		Long: `Compute the cross-section layout for a stackup.

The layout command reads a stackup definition and computes the diagram
geometry: layer rectangles, callout positions, leader line routes and copper
hatching. The output is a layout.json file (same format as 'render -f json')
for inspection or downstream tooling.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.StackPath = args[0]
			if err := applyLayoutFlags(&opts, flagVals); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, output, noCache, compact)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&compact, "compact", false, "compact JSON output")

	// Layout flags
	addLayoutFlags(cmd, &opts, &flagVals)

	return cmd
}

// runLayout loads the stack, computes the layout and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache, compact bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	stack, stackHash, _, err := runner.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("load stack %s: %w", opts.StackPath, err)
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, stack, stackHash, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, d := range l.Diagnostics {
		printWarning("%s: %s", d.Code, d.Message)
	}

	var jsonOpts []section.JSONOption
	if compact {
		jsonOpts = append(jsonOpts, section.WithJSONCompact())
	}
	data, err := section.RenderJSON(l, jsonOpts...)
	if err != nil {
		return fmt.Errorf("serialize layout: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(opts.StackPath, filepath.Ext(opts.StackPath))
		outputPath = base + ".layout.json"
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(stack.Layers), len(l.Callouts), cacheHit)
	printNewline()
	printNextStep("Render", "stackview render "+opts.StackPath)

	return nil
}
