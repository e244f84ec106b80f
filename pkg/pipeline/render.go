package pipeline

import (
	"fmt"

	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/render/section"
)

// RenderFromLayout generates output artifacts in the requested formats.
func RenderFromLayout(l *layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = section.RenderSVG(l, svgOpts...)
		case FormatPNG:
			pngOpts := []section.PNGOption{section.WithPNGSVGOptions(svgOpts...)}
			if opts.PNGScale > 0 {
				pngOpts = append(pngOpts, section.WithScale(opts.PNGScale))
			}
			data, err = section.RenderPNG(l, pngOpts...)
		case FormatPDF:
			data, err = section.RenderPDF(l, section.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			var jsonOpts []section.JSONOption
			if opts.Compact {
				jsonOpts = append(jsonOpts, section.WithJSONCompact())
			}
			data, err = section.RenderJSON(l, jsonOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options shared by the SVG-derived formats.
func buildSVGOptions(opts Options) []section.SVGOption {
	var svgOpts []section.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, section.WithTitle(opts.Title))
	}
	if opts.SVGScale > 0 {
		svgOpts = append(svgOpts, section.WithSVGScale(opts.SVGScale))
	}
	return svgOpts
}
