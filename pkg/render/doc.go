// Package render provides output rendering for stackup layouts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// cross-section layouts into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Cross-section diagram sinks (in [section] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := section.RenderSVG(l, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Cross-Section Diagrams
//
// The [section] subpackage renders a [layout.Layout] as a stack of layer
// rectangles with copper hatching, leader lines and callout labels. SVG
// is the primary format; JSON dumps the full layout for external tools;
// PNG and PDF are produced via SVG conversion.
//
// [section]: github.com/matzehuels/stackview/pkg/render/section
// [layout.Layout]: github.com/matzehuels/stackview/pkg/layout.Layout
package render
