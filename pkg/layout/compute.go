package layout

import (
	"github.com/matzehuels/stackview/pkg/geom"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// Compute is the single entry point of the layout engine. It validates
// the config and stack, maps thicknesses to heights, stacks the boxes,
// applies the optional target-height scaling, resolves callout
// collisions, routes the leader lines and generates copper hatching.
//
// The computation is pure and deterministic: it never mutates its
// inputs, performs no I/O, and the cost is linear in layer count. An
// empty stack yields an empty layout, not an error.
func Compute(stack *stackup.Stack, cfg Config) (*Layout, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := stack.Validate(); err != nil {
		return nil, err
	}

	heights, diags := layerHeights(stack, cfg)
	l := build(stack, cfg, heights)
	l.Diagnostics = diags

	// Two-pass scaling: the first build above learned the natural
	// height; rebuild with the derived effective config when a target
	// height is requested. A zero natural height cannot be scaled.
	if cfg.TargetHeightMM > 0 && l.TotalHeightMM > 0 {
		factor := cfg.TargetHeightMM / l.TotalHeightMM
		eff := cfg.scaled(factor)
		heights, diags = layerHeights(stack, eff)
		l = build(stack, eff, heights)
		l.Diagnostics = diags
		l.ScaleFactor = factor
	}

	if err := resolve(l); err != nil {
		return nil, err
	}
	if err := route(l); err != nil {
		return nil, err
	}
	hatch(l)

	return l, nil
}

// hatch fills copper boxes with clipped hatch lines at the configured
// angle. Hatching is decorative and independent of the layout math.
func hatch(l *Layout) {
	cfg := l.Config
	if !cfg.HatchEnabled {
		return
	}
	for _, box := range l.Boxes {
		if box.Layer.Kind != stackup.KindCopper {
			continue
		}
		lines := geom.HatchLines(box.Rect, cfg.HatchSpacingMM, cfg.HatchAngleDeg)
		if len(lines) == 0 {
			continue
		}
		if l.Hatches == nil {
			l.Hatches = make(map[int][]geom.Segment)
		}
		l.Hatches[box.Index] = lines
	}
}
