package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/pipeline"
)

// loadLayoutConfig reads a layout configuration from a TOML file.
func loadLayoutConfig(path string) (layout.Config, error) {
	var cfg layout.Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config file")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	return cfg, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	layers    int
	callouts  int
	cacheHit  bool
}

// writeArtifacts writes rendered artifacts to disk and prints a summary.
// With a single format the output flag names the file directly; with
// several formats it is treated as a base path.
func writeArtifacts(p artifactWriteParams) error {
	single := len(p.formats) == 1

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		var path string
		if single && p.output != "" {
			path = p.output
		} else {
			path = basePath(p.output, p.input) + "." + format
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(p.layers, p.callouts, p.cacheHit)

	return nil
}
