package geom

import "math"

// HatchLines fills r with parallel hatch lines at angleDeg degrees
// from the positive x axis, spaced by spacing mm perpendicular to the
// line direction and clipped to the rectangle. A non-positive spacing
// or an empty rectangle yields no lines; a non-finite angle falls back
// to 45.
func HatchLines(r Rect, spacing, angleDeg float64) []Segment {
	if spacing <= 0 || r.Empty() {
		return nil
	}
	if math.IsNaN(angleDeg) || math.IsInf(angleDeg, 0) {
		angleDeg = 45
	}

	rad := angleDeg * math.Pi / 180
	dir := Point{X: math.Cos(rad), Y: math.Sin(rad)}
	norm := Point{X: -dir.Y, Y: dir.X}

	// Candidate lines pass through offsets of the rect center along the
	// hatch normal. Half the diagonal bounds how far a line can sit from
	// the center and still intersect the rect, so sweeping count steps
	// in both directions covers every corner at any angle.
	center := Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
	diag := math.Hypot(r.Width, r.Height)
	count := int(diag/spacing) + 1

	var lines []Segment
	for i := -count; i <= count; i++ {
		mid := Point{
			X: center.X + float64(i)*spacing*norm.X,
			Y: center.Y + float64(i)*spacing*norm.Y,
		}
		candidate := Segment{
			Start: Point{X: mid.X - diag*dir.X, Y: mid.Y - diag*dir.Y},
			End:   Point{X: mid.X + diag*dir.X, Y: mid.Y + diag*dir.Y},
		}
		if clipped, ok := ClipSegment(candidate, r); ok {
			lines = append(lines, clipped)
		}
	}
	return lines
}
