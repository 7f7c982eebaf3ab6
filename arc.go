package dragon

import (
	"iter"
	"math"
)

// Arc is a circular arc in center form. The arc starts at StartAngle and spans
// SweepAngle radians; a positive sweep runs towards positive y.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// NewArc converts an arc given in endpoint form, as used by [ArcToKind] elements, to
// center form. Of the two circles of the given radius through p0 and p1 it picks the
// one whose shorter arc runs in the direction selected by sweep.
//
// If radius is too small for the circle to reach both points, it is scaled up to half
// the distance between them. Coincident points produce an arc with zero sweep.
func NewArc(p0, p1 Point, radius float64, sweep bool) Arc {
	// Half of the chord, from p1 to p0.
	half := p0.Sub(p1).Mul(0.5)
	h := half.Hypot()
	if h == 0 {
		return Arc{Center: p0, Radius: 0}
	}
	r := math.Max(math.Abs(radius), h)
	k := math.Sqrt(math.Max(r*r-h*h, 0)) / h
	if !sweep {
		k = -k
	}
	center := p0.Midpoint(p1).Translate(Vec(half.Y, -half.X).Mul(k))

	start := p0.Sub(center).Angle()
	delta := p1.Sub(center).Angle() - start
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radius:     r,
		StartAngle: start,
		SweepAngle: delta,
	}
}

// Eval returns the point at parameter t, where t = 0 is the start of the arc and t = 1
// is its end.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + t*a.SweepAngle).Mul(a.Radius))
}

// Flatten returns an iterator over points approximating the arc by line segments that
// deviate from it by at most tolerance. The start of the arc is not included, its end
// is.
func (a Arc) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		n := 1
		if a.Radius > tolerance && tolerance > 0 {
			step := 2 * math.Acos(1-tolerance/a.Radius)
			n = max(1, int(math.Ceil(math.Abs(a.SweepAngle)/step)))
		}
		for i := 1; i <= n; i++ {
			if !yield(a.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}
