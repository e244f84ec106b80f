package geom

// Cohen-Sutherland outcodes.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func outcode(p Point, r Rect) int {
	code := outInside
	switch {
	case p.X < r.X:
		code |= outLeft
	case p.X > r.Right():
		code |= outRight
	}
	switch {
	case p.Y < r.Y:
		code |= outTop
	case p.Y > r.Bottom():
		code |= outBottom
	}
	return code
}

// ClipSegment clips s against r using the Cohen-Sutherland algorithm.
// It returns the clipped segment and true when any part of s lies
// within r, or a zero segment and false otherwise. An empty rectangle
// clips everything out.
func ClipSegment(s Segment, r Rect) (Segment, bool) {
	if r.Empty() {
		return Segment{}, false
	}

	p0, p1 := s.Start, s.End
	code0, code1 := outcode(p0, r), outcode(p1, r)

	for {
		if code0|code1 == 0 {
			// Both endpoints inside.
			return Segment{Start: p0, End: p1}, true
		}
		if code0&code1 != 0 {
			// Both endpoints share an outside zone.
			return Segment{}, false
		}

		// Pick the endpoint that is outside and move it to the
		// intersection with the violated edge.
		outCode := code0
		if outCode == 0 {
			outCode = code1
		}

		var p Point
		dx, dy := p1.X-p0.X, p1.Y-p0.Y
		switch {
		case outCode&outTop != 0:
			p.X = p0.X + dx*(r.Y-p0.Y)/dy
			p.Y = r.Y
		case outCode&outBottom != 0:
			p.X = p0.X + dx*(r.Bottom()-p0.Y)/dy
			p.Y = r.Bottom()
		case outCode&outRight != 0:
			p.Y = p0.Y + dy*(r.Right()-p0.X)/dx
			p.X = r.Right()
		case outCode&outLeft != 0:
			p.Y = p0.Y + dy*(r.X-p0.X)/dx
			p.X = r.X
		}

		if outCode == code0 {
			p0 = p
			code0 = outcode(p0, r)
		} else {
			p1 = p
			code1 = outcode(p1, r)
		}
	}
}
