package dragon

// Rect is an axis-aligned rectangle spanning (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with corners p0 and p1, with X0 <= X1
// and Y0 <= Y1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// BoundingBox returns the smallest rectangle containing a curve's start point and
// its vertices. Rounded and skewed paths stay inside it, since they never leave
// the corners of the sharp path.
func BoundingBox(start Point, vertices []Point) Rect {
	r := Rect{start.X, start.Y, start.X, start.Y}
	for _, v := range vertices {
		r = r.UnionPoint(v)
	}
	return r
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point { return Pt(r.X0, r.Y0).Midpoint(Pt(r.X1, r.Y1)) }

// UnionPoint returns the smallest rectangle containing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate grows r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}
