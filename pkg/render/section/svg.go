package section

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// Layer fill colors, loosely matching physical board materials.
const (
	colorCopper     = "#c8873e"
	colorDielectric = "#d9c78a"
	colorSoldermask = "#2e7d4f"
	colorOther      = "#c0c0c0"
	colorStroke     = "#333333"
	colorHatch      = "#8a5a20"
	colorLeader     = "#444444"
	colorText       = "#222222"
)

// marginMM is the whitespace around the drawing content.
const marginMM = 5.0

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale float64 // output pixels per mm
	title string
}

// WithSVGScale sets the pixel-per-millimeter output scale (default 4).
func WithSVGScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithTitle draws a title above the stack.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG renders the layout as an SVG document. It never fails: an
// empty layout produces a small empty canvas.
func RenderSVG(l *layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 4}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := bounds(l)
	if r.title != "" {
		minY -= 2.5 * l.Config.CalloutTextSizeMM
	}
	width := maxX - minX + 2*marginMM
	height := maxY - minY + 2*marginMM

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		minX-marginMM, minY-marginMM, width, height, width*r.scale, height*r.scale)

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" font-weight="bold" fill="%s">%s</text>`+"\n",
			l.Config.OriginXMM, minY+l.Config.CalloutTextSizeMM, l.Config.CalloutTextSizeMM*1.5, colorText, escapeText(r.title))
	}

	renderBoxes(&buf, l)
	renderHatches(&buf, l)
	renderLeaders(&buf, l)
	renderCallouts(&buf, l)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBoxes(buf *bytes.Buffer, l *layout.Layout) {
	for _, b := range l.Boxes {
		if b.Rect.Empty() {
			continue
		}
		fmt.Fprintf(buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="%s" stroke="%s" stroke-width="0.1"/>`+"\n",
			b.Rect.X, b.Rect.Y, b.Rect.Width, b.Rect.Height, fillFor(b.Layer.Kind), colorStroke)
	}
}

func renderHatches(buf *bytes.Buffer, l *layout.Layout) {
	for _, b := range l.Boxes {
		lines, ok := l.Hatches[b.Index]
		if !ok {
			continue
		}
		for _, s := range lines {
			fmt.Fprintf(buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="0.08"/>`+"\n",
				s.Start.X, s.Start.Y, s.End.X, s.End.Y, colorHatch)
		}
	}
}

func renderLeaders(buf *bytes.Buffer, l *layout.Layout) {
	for _, leader := range l.Leaders {
		for _, s := range leader.Segments {
			fmt.Fprintf(buf, `  <line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.3f"/>`+"\n",
				s.Start.X, s.Start.Y, s.End.X, s.End.Y, colorLeader, l.Config.LeaderLineWidthMM)
		}
	}
}

func renderCallouts(buf *bytes.Buffer, l *layout.Layout) {
	anchor := "start"
	if l.Direction == layout.DirectionInward {
		anchor = "end"
	}
	for _, c := range l.Callouts {
		fmt.Fprintf(buf, `  <text x="%.3f" y="%.3f" font-size="%.2f" text-anchor="%s" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			c.TextX, c.TextY, l.Config.CalloutTextSizeMM, anchor, colorText, escapeText(c.Text))
	}
}

func fillFor(kind stackup.Kind) string {
	switch kind {
	case stackup.KindCopper:
		return colorCopper
	case stackup.KindDielectric:
		return colorDielectric
	case stackup.KindSoldermask:
		return colorSoldermask
	default:
		return colorOther
	}
}

// bounds computes the content bounding box in mm: boxes, leader
// segments and the callout text column (text extent estimated from the
// layout's total width).
func bounds(l *layout.Layout) (minX, minY, maxX, maxY float64) {
	if l.Empty() {
		x, y := l.Config.OriginXMM, l.Config.OriginYMM
		return x, y, x + l.Config.LayerWidthMM, y
	}

	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	for _, b := range l.Boxes {
		grow(b.Rect.X, b.Rect.Y)
		grow(b.Rect.Right(), b.Rect.Bottom())
	}
	for _, leader := range l.Leaders {
		for _, s := range leader.Segments {
			grow(s.Start.X, s.Start.Y)
			grow(s.End.X, s.End.Y)
		}
	}

	textWidth := l.TotalWidthMM - l.Config.LayerWidthMM - l.EffectiveLeaderLengthMM - l.Config.TextPaddingMM
	halfText := l.Config.CalloutTextSizeMM / 2
	for _, c := range l.Callouts {
		if l.Direction == layout.DirectionInward {
			grow(c.TextX-textWidth, c.TextY-halfText)
		} else {
			grow(c.TextX+textWidth, c.TextY-halfText)
		}
		grow(c.TextX, c.TextY+halfText)
	}
	return minX, minY, maxX, maxY
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
