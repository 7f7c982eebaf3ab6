package dragon

import (
	"iter"
	"math"
)

// Affine maps curve space to canvas space. The coefficients (a, b, c, d, e, f)
// form the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// applied to column vectors, so that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var (
	// Identity leaves points unchanged.
	Identity = Affine{1, 0, 0, 1, 0, 0}
	// FlipY mirrors across the x-axis, converting between y-up and y-down
	// coordinates. It reverses the direction of every arc.
	FlipY = Affine{1, 0, 0, -1, 0, 0}
)

// Scale returns a transform scaling by x horizontally and y vertically.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by Scale(x, y).
func (aff Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(aff) }

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// UniformScale returns the factor by which aff scales lengths. It is exact for
// transforms that scale both axes by the same amount, which are the only ones
// that map circular arcs to circular arcs.
func (aff Affine) UniformScale() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}

// Transform applies aff to every value of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
