// Package geom provides the 2D primitives used by the cross-section
// layout engine. Coordinates are in millimeters with the Y axis growing
// downward, matching the drawing surface.
package geom

// Point is a position in mm.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight line between two points.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.CenterX(), Y: r.CenterY()}
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
