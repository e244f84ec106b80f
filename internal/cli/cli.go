// Package cli implements the stackview command-line interface.
//
// This package provides commands for rendering PCB stackup definitions as
// cross-section diagrams, printing them as tables, browsing them
// interactively, and managing the local result cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate SVG, PNG, PDF or JSON diagrams from a stack file
//   - layout: Compute and export the diagram geometry without rendering
//   - table: Print a stackup summary as a terminal table
//   - inspect: Browse a stackup's layers interactively
//   - cache: Manage the local result cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackview/pkg/buildinfo"
	"github.com/matzehuels/stackview/pkg/cache"
	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "stackview"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "stackview",
		Short:        "Stackview draws PCB stackup cross-section diagrams",
		Long:         `Stackview is a CLI tool for turning PCB stackup definitions into annotated cross-section diagrams, with callouts, leader lines and copper hatching.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/stackview/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// layoutFlagValues holds the layout flag strings that need parsing
// before they can populate a layout.Config.
type layoutFlagValues struct {
	configPath string
	mode       string
	direction  string
}

// addLayoutFlags registers the flags shared by commands that compute layouts.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options, vals *layoutFlagValues) {
	cmd.Flags().StringVar(&vals.configPath, "config", "", "layout configuration file (TOML)")
	cmd.Flags().StringVarP(&vals.mode, "mode", "m", "", "thickness mode: uniform, proportional (default), scaled")
	cmd.Flags().StringVarP(&vals.direction, "direction", "d", "", "leader direction: auto (default), outward, inward")
	cmd.Flags().Float64Var(&opts.Layout.TargetHeightMM, "target-height", 0, "scale the diagram to this total height in mm")
	cmd.Flags().Float64Var(&opts.Layout.LayerWidthMM, "layer-width", 0, "layer rectangle width in mm")
	cmd.Flags().BoolVar(&opts.Layout.HatchEnabled, "hatch", true, "hatch copper layers")
}

// applyLayoutFlags parses the string-valued layout flags into opts.
func applyLayoutFlags(opts *pipeline.Options, vals layoutFlagValues) error {
	if vals.configPath != "" {
		cfg, err := loadLayoutConfig(vals.configPath)
		if err != nil {
			return err
		}
		// Flag values below override the file.
		target := opts.Layout.TargetHeightMM
		width := opts.Layout.LayerWidthMM
		hatch := opts.Layout.HatchEnabled
		opts.Layout = cfg
		if target != 0 {
			opts.Layout.TargetHeightMM = target
		}
		if width != 0 {
			opts.Layout.LayerWidthMM = width
		}
		opts.Layout.HatchEnabled = hatch
	}
	if vals.mode != "" {
		mode, err := layout.ParseThicknessMode(vals.mode)
		if err != nil {
			return err
		}
		opts.Layout.Mode = mode
	}
	if vals.direction != "" {
		dir, err := layout.ParseLeaderDirection(vals.direction)
		if err != nil {
			return err
		}
		opts.Layout.LeaderDirection = dir
	}
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
