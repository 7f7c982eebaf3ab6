package dragon

import (
	"fmt"
	"math"
)

// Point is a location in the plane. Curves are computed in the coordinate system
// of their end points; dragon makes no assumption about the direction of the y
// axis.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp returns the point a fraction t of the way from pt to o. The path encoders
// place corner cuts and skewed vertices with it. The result is exactly pt at
// t = 0 and exactly o at t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X*(1-t) + o.X*t,
		Y: pt.Y*(1-t) + o.Y*t,
	}
}

func (pt Point) Midpoint(o Point) Point { return pt.Lerp(o, 0.5) }

func (pt Point) Distance(o Point) float64 { return pt.Sub(o).Hypot() }

func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }

func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

// IsFinite reports whether neither coordinate is infinite or NaN.
func (pt Point) IsFinite() bool { return !pt.IsInf() && !pt.IsNaN() }
