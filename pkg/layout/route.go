package layout

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/geom"
)

// route constructs the final leader segments and aligns the callout
// text column. One effective leader length is derived for the whole
// layout so every callout's text lands at the same X coordinate;
// callouts with small displacements spend more horizontal space than
// strictly needed in exchange for the aligned column.
func route(l *Layout) error {
	cfg := l.Config

	if len(l.Callouts) == 0 {
		l.Direction = DirectionOutward
		l.EffectiveLeaderLengthMM = cfg.LeaderLineLengthMM
		return nil
	}

	// Required length per callout: straight callouts need the
	// configured length; elbows add their displacement and the final
	// segment floor on top of the lead-in run.
	eff := cfg.LeaderLineLengthMM
	leadIn := leadInFraction * cfg.LeaderLineLengthMM
	for i := range l.Callouts {
		disp := math.Abs(l.Callouts[i].TextY - l.Callouts[i].AnchorY)
		if disp < cfg.MinElbowHeightMM {
			continue
		}
		if required := leadIn + disp + MinFinalSegmentMM; required > eff {
			eff = required
		}
	}

	dir := cfg.LeaderDirection
	if dir == DirectionAuto {
		dir = autoDirection(l, eff)
	}

	l.Leaders = make([]Leader, 0, len(l.Callouts))
	for i := range l.Callouts {
		c := &l.Callouts[i]
		box := l.Boxes[i]
		disp := c.TextY - c.AnchorY

		leader, textX, err := routeOne(box.Rect, c.AnchorY, disp, eff, leadIn, dir, cfg)
		if err != nil {
			return err
		}
		leader.Index = c.Index
		c.TextX = textX
		l.Leaders = append(l.Leaders, leader)
	}

	l.Direction = dir
	l.EffectiveLeaderLengthMM = eff
	l.TotalWidthMM = cfg.LayerWidthMM + eff + cfg.TextPaddingMM + maxTextWidth(l.Callouts, cfg)
	return nil
}

// routeOne produces the leader for a single callout. Outward leaders
// leave the right edge of the rectangle; inward leaders mirror to the
// left edge. Both start at the rectangle's vertical center.
func routeOne(rect geom.Rect, anchorY, disp, eff, leadIn float64, dir LeaderDirection, cfg Config) (Leader, float64, error) {
	// sign flips the horizontal axis for inward routing.
	sign := 1.0
	x0 := rect.Right()
	if dir == DirectionInward {
		sign = -1.0
		x0 = rect.X
	}

	if math.Abs(disp) < cfg.MinElbowHeightMM {
		leader := Leader{
			Style: StyleStraight,
			Segments: []geom.Segment{{
				Start: geom.Point{X: x0, Y: anchorY},
				End:   geom.Point{X: x0 + sign*eff, Y: anchorY},
			}},
		}
		return leader, x0 + sign*(eff+cfg.TextPaddingMM), nil
	}

	rise := math.Abs(disp)
	final := eff - leadIn - rise
	if final < MinFinalSegmentMM-1e-9 {
		return Leader{}, 0, errors.New(errors.ErrCodeInternal,
			"leader final segment %.3f mm below minimum %.1f mm (effective length %.3f, displacement %.3f)",
			final, MinFinalSegmentMM, eff, rise)
	}

	style := StyleAngledDown
	if disp < 0 {
		style = StyleAngledUp
	}

	elbowStart := geom.Point{X: x0, Y: anchorY}
	elbowMid := geom.Point{X: x0 + sign*leadIn, Y: anchorY}
	// 45-degree diagonal: horizontal run equals the vertical rise.
	elbowEnd := geom.Point{X: elbowMid.X + sign*rise, Y: anchorY + disp}
	tail := geom.Point{X: x0 + sign*eff, Y: anchorY + disp}

	leader := Leader{
		Style: style,
		Segments: []geom.Segment{
			{Start: elbowStart, End: elbowMid},
			{Start: elbowMid, End: elbowEnd},
			{Start: elbowEnd, End: tail},
		},
	}
	return leader, x0 + sign*(eff+cfg.TextPaddingMM), nil
}

// autoDirection picks the callout side. Tall callout columns or leader
// lengths past half the rectangle width read better folded inward.
func autoDirection(l *Layout, eff float64) LeaderDirection {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range l.Callouts {
		minY = math.Min(minY, c.TextY)
		maxY = math.Max(maxY, c.TextY)
	}
	extent := maxY - minY

	if extent > 1.2*l.TotalHeightMM || eff > 0.5*l.Config.LayerWidthMM {
		return DirectionInward
	}
	return DirectionOutward
}

func maxTextWidth(callouts []Callout, cfg Config) float64 {
	longest := 0
	for _, c := range callouts {
		if n := utf8.RuneCountInString(c.Text); n > longest {
			longest = n
		}
	}
	return float64(longest) * cfg.CalloutTextSizeMM * fontWidthFactor
}
