// Package section renders computed stackup layouts to output formats.
//
// SVG is the native sink: each layer rectangle becomes a filled rect
// (hatched when copper), each leader a polyline, each callout a text
// label. JSON dumps the complete layout losslessly for external tools.
// PNG and PDF convert the SVG via rsvg-convert.
//
// All sinks take options in functional-option style:
//
//	svg := section.RenderSVG(l, section.WithTitle("4-layer board"))
//	data, err := section.RenderJSON(l)
//	png, err := section.RenderPNG(l, section.WithScale(3.0))
package section
