package layout

import (
	"fmt"
	"math"

	"github.com/matzehuels/stackview/pkg/errors"
)

// detectCollisions returns the indices of callouts that sit closer than
// minSpacing to a vertical neighbor.
func detectCollisions(callouts []Callout, minSpacing float64) []int {
	var out []int
	seen := make(map[int]bool)
	mark := func(i int) {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	for i := 0; i+1 < len(callouts); i++ {
		if math.Abs(callouts[i+1].TextY-callouts[i].TextY) < minSpacing {
			mark(i)
			mark(i + 1)
		}
	}
	return out
}

// symmetricDisplacements computes the displacement for each of n
// callouts around the center index n/2. The center callout stays at
// zero (drawn straight); callouts above it shift up and callouts below
// shift down in exact integer multiples of the spacing unit, giving
// mirror symmetry by construction. For even n the center lands on the
// later of the two middle callouts.
func symmetricDisplacements(n int, unit float64) []float64 {
	out := make([]float64, n)
	center := n / 2
	for i := range out {
		out[i] = float64(i-center) * unit
	}
	return out
}

// resolve spreads colliding callouts symmetrically about the center
// layer. The placement is deterministic, so the loop settles in one
// pass; the iteration cap exists purely to catch broken geometry math,
// and exceeding it is an internal error. Spacing violations that
// survive resolution are recorded as diagnostics.
func resolve(l *Layout) error {
	cfg := l.Config
	if len(l.Callouts) == 0 {
		return nil
	}

	for iter := 0; ; iter++ {
		if iter >= maxResolveIterations {
			return errors.New(errors.ErrCodeInternal,
				"collision resolution did not settle within %d iterations", maxResolveIterations)
		}

		colliding := detectCollisions(l.Callouts, cfg.MinCalloutSpacingMM)
		if len(colliding) == 0 {
			return nil
		}

		disps := symmetricDisplacements(len(l.Callouts), cfg.MinElbowHeightMM)
		changed := false
		for i := range l.Callouts {
			want := l.Callouts[i].AnchorY + disps[i]
			if l.Callouts[i].TextY != want {
				l.Callouts[i].TextY = want
				changed = true
			}
		}

		if !changed {
			// The symmetric placement is already applied and spacing
			// still falls short; record the residue rather than loop.
			l.Diagnostics = append(l.Diagnostics, spacingDiagnostics(l.Callouts, cfg.MinCalloutSpacingMM)...)
			return nil
		}
	}
}

func spacingDiagnostics(callouts []Callout, minSpacing float64) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i+1 < len(callouts); i++ {
		gap := math.Abs(callouts[i+1].TextY - callouts[i].TextY)
		if gap < minSpacing {
			diags = append(diags, Diagnostic{
				Code: DiagSpacingViolation,
				Message: fmt.Sprintf("callouts %d and %d are %.2f mm apart, minimum is %.2f mm",
					i, i+1, gap, minSpacing),
				Layer: i,
			})
		}
	}
	return diags
}
