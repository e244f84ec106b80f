package layout

import (
	"fmt"

	"github.com/matzehuels/stackview/pkg/stackup"
)

// layerHeights maps each layer's physical thickness to a drawn height
// according to the thickness mode. The returned slice is parallel to
// stack.Layers. Diagnostics flag zero-height results in scaled mode,
// which are legal but usually indicate missing thickness data.
func layerHeights(stack *stackup.Stack, cfg Config) ([]float64, []Diagnostic) {
	heights := make([]float64, len(stack.Layers))
	var diags []Diagnostic

	switch cfg.Mode {
	case ModeUniform:
		for i := range stack.Layers {
			heights[i] = cfg.UniformLayerHeightMM
		}

	case ModeProportional:
		for i, l := range stack.Layers {
			heights[i] = cfg.ratioFor(l.Kind) * cfg.BaseHeightMM
		}

	case ModeScaled:
		total := stack.TotalThicknessMM()
		if total == 0 {
			// Degenerate but valid: every layer draws at zero height.
			if len(stack.Layers) > 0 {
				diags = append(diags, Diagnostic{
					Code:    DiagDegenerateScaling,
					Message: "total stack thickness is zero, all layers drawn at zero height",
				})
			}
			return heights, diags
		}
		factor := cfg.MaxTotalHeightMM / total
		for i, l := range stack.Layers {
			heights[i] = l.ThicknessMM * factor
			if l.ThicknessMM == 0 {
				diags = append(diags, Diagnostic{
					Code:    DiagZeroThickness,
					Message: fmt.Sprintf("layer %q has zero thickness and draws at zero height", l.Name),
					Layer:   i,
				})
			}
		}
	}

	return heights, diags
}
