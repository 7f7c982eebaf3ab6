package dragon

import (
	"math"
	"slices"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 0.5)), Pt(6, 2), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	aff := Translate(Vec(-5, 0)).ThenScale(2, 2).ThenTranslate(Vec(1, 1))
	assertNear(t, Pt(5, 0).Transform(aff), Pt(1, 1), epsilon)
	assertNear(t, Pt(7, 4).Transform(aff), Pt(5, 9), epsilon)
	if s := aff.UniformScale(); math.Abs(s-2) > epsilon {
		t.Errorf("got scale %v, want 2", s)
	}
	if s := FlipY.UniformScale(); s != 1 {
		t.Errorf("got scale %v for a mirror, want 1", s)
	}
}

func TestTransformPath(t *testing.T) {
	p := Path{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), ArcTo(1, true, Pt(2, 1))}

	scaled := p.Transform(Scale(3, 3))
	diff(t, scaled.Points(), []Point{Pt(0, 0), Pt(3, 0), Pt(6, 3)})
	if scaled[2].Radius != 3 || !scaled[2].Sweep {
		t.Errorf("got %v, want radius 3 with sweep", scaled[2])
	}

	// Mirroring reverses the direction of arcs.
	flipped := slices.Collect(Transform(p.Elements(), FlipY))
	if flipped[2].Radius != 1 || flipped[2].Sweep {
		t.Errorf("got %v, want radius 1 without sweep", flipped[2])
	}
}
