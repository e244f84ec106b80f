package layout

import (
	"github.com/matzehuels/stackview/pkg/geom"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// build stacks one rectangle per layer downward from the origin and
// seeds each callout at its rectangle's vertical center. Soldermask
// layers get the configured gap inserted before and after their
// rectangle. Collision resolution and leader routing happen in later
// stages; this pass only produces the baseline candidates.
func build(stack *stackup.Stack, cfg Config, heights []float64) *Layout {
	l := &Layout{
		Stack:       stack,
		Boxes:       make([]LayerBox, 0, len(stack.Layers)),
		Callouts:    make([]Callout, 0, len(stack.Layers)),
		Config:      cfg,
		ScaleFactor: 1,
	}

	y := cfg.OriginYMM
	for i, layer := range stack.Layers {
		if layer.Kind == stackup.KindSoldermask {
			y += cfg.SoldermaskGapMM
		}

		rect := geom.Rect{
			X:      cfg.OriginXMM,
			Y:      y,
			Width:  cfg.LayerWidthMM,
			Height: heights[i],
		}
		l.Boxes = append(l.Boxes, LayerBox{
			Index:    i,
			Layer:    layer,
			Rect:     rect,
			HeightMM: heights[i],
		})

		anchorY := rect.CenterY()
		l.Callouts = append(l.Callouts, Callout{
			Index:   i,
			Text:    stackup.CalloutText(layer),
			AnchorY: anchorY,
			TextX:   rect.Right() + cfg.LeaderLineLengthMM + cfg.TextPaddingMM,
			TextY:   anchorY,
		})

		y += heights[i]
		if layer.Kind == stackup.KindSoldermask {
			y += cfg.SoldermaskGapMM
		}
	}

	l.TotalHeightMM = y - cfg.OriginYMM
	return l
}
