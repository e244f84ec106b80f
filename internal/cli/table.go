package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackview/pkg/pipeline"
	"github.com/matzehuels/stackview/pkg/stackup"
	"github.com/matzehuels/stackview/pkg/table"
)

// tableCommand creates the table command for textual stackup summaries.
func (c *CLI) tableCommand() *cobra.Command {
	var (
		presetStr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "table [stack.toml]",
		Short: "Print a stackup as a terminal table",
		Long: `Print a stackup as a terminal table.

The table command reads a stackup definition and prints it as a styled
table. Three presets trade detail for width: detailed (all fields with
tolerances), compact (name, kind, thickness) and minimal (name, thickness).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := table.ParsePreset(presetStr)
			if err != nil {
				return err
			}
			return c.runTable(cmd.Context(), args[0], preset, noCache)
		},
	}

	cmd.Flags().StringVarP(&presetStr, "preset", "p", "compact", "table preset: detailed, compact, minimal")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runTable loads the stack and prints the table.
func (c *CLI) runTable(ctx context.Context, input string, preset table.Preset, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	stack, err := runner.Load(ctx, pipeline.Options{StackPath: input, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("load stack %s: %w", input, err)
	}

	fmt.Print(table.Build(stack, preset).Render())
	printNewline()
	printKeyValue("Layers", fmt.Sprintf("%d (%d copper)", len(stack.Layers), stack.CopperCount()))
	printKeyValue("Thickness", stackup.FormatThickness(stack.TotalThicknessMM()))

	return nil
}
