package dragon

import (
	"fmt"
	"math"
)

const (
	// DefaultRoundFactor is the round factor of [StyleRounded].
	DefaultRoundFactor = 0.25
	// ArcRoundFactor is the round factor of [StyleArc], the largest valid one.
	ArcRoundFactor = 0.5
	// DefaultSkewFactor is the skew factor of [StyleSkewed].
	DefaultSkewFactor = 0.12

	// Relative tolerance for considering two segments to be of equal length.
	segmentLengthTolerance = 1e-6
)

// SharpPath returns a path that moves to start and draws a straight line to each
// vertex in turn.
func SharpPath(start Point, vertices []Point) Path {
	p := make(Path, 0, len(vertices)+1)
	p.MoveTo(start)
	for _, v := range vertices {
		p.LineTo(v)
	}
	return p
}

// RoundedPath returns a path like [SharpPath] whose corners are replaced by circular
// arcs. Each arc starts roundFactor of a segment length before its corner, ends
// roundFactor of a segment length after it, and has a radius of roundFactor segment
// lengths. Arcs bend in the direction the curve turns at their corner. The final
// segment ends in a plain line to the last vertex.
//
// All segments, including the first one from start, must be of equal length, as they
// are in any dragon curve. roundFactor must be in (0, 0.5].
//
// RoundedPath returns [ErrInvalidFactor], [ErrNoVertices], [ErrDegenerateSegment] or
// [ErrNonUniformSegments] for input it cannot round.
func RoundedPath(start Point, vertices []Point, roundFactor float64) (Path, error) {
	if err := checkRoundFactor(roundFactor); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	lineLength := start.Distance(vertices[0])
	if lineLength == 0 {
		return nil, fmt.Errorf("%w: first vertex equals start %s", ErrDegenerateSegment, start)
	}
	radius := roundFactor * lineLength

	p := make(Path, 0, 2*len(vertices)+1)
	p.MoveTo(start)
	cur := start
	for i, v := range vertices {
		seg := Line{cur, v}
		if l := seg.Length(); !equalLength(l, lineLength) {
			return nil, fmt.Errorf("%w: segment %d has length %g, want %g", ErrNonUniformSegments, i, l, lineLength)
		}
		if i == len(vertices)-1 {
			p.LineTo(v)
			break
		}
		next := Line{v, vertices[i+1]}
		p.LineTo(seg.Eval(1 - roundFactor))
		p.ArcTo(radius, seg.Turn(next) > 0, next.Eval(roundFactor))
		cur = v
	}
	return p, nil
}

// SkewedPath returns a path like [SharpPath] in which every line but the last stops
// short of its vertex by skewFactor of its length. The following line still starts
// from the true vertex position, so corners appear cut. skewFactor must be in [0, 1).
func SkewedPath(start Point, vertices []Point, skewFactor float64) (Path, error) {
	if err := checkSkewFactor(skewFactor); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	p := make(Path, 0, len(vertices)+1)
	p.MoveTo(start)
	cur := start
	for i, v := range vertices {
		if i == len(vertices)-1 {
			p.LineTo(v)
			break
		}
		p.LineTo(Line{cur, v}.Eval(1 - skewFactor))
		cur = v
	}
	return p, nil
}

// EncodeSharp returns the SVG path commands of [SharpPath]. Numbers are written
// losslessly, so vertices carry floating point noise such as 5.000000000000001;
// use [SharpPath] with [SVGOptions.MaxPrecision] for rounded output.
func EncodeSharp(start Point, vertices []Point) string {
	return SharpPath(start, vertices).SVG(SVGOptions{})
}

// EncodeRounded returns the SVG path commands of [RoundedPath].
func EncodeRounded(start Point, vertices []Point, roundFactor float64) (string, error) {
	p, err := RoundedPath(start, vertices, roundFactor)
	if err != nil {
		return "", err
	}
	return p.SVG(SVGOptions{}), nil
}

// EncodeSkewed returns the SVG path commands of [SkewedPath].
func EncodeSkewed(start Point, vertices []Point, skewFactor float64) (string, error) {
	p, err := SkewedPath(start, vertices, skewFactor)
	if err != nil {
		return "", err
	}
	return p.SVG(SVGOptions{}), nil
}

func checkRoundFactor(f float64) error {
	if !(f > 0 && f <= 0.5) {
		return fmt.Errorf("%w: round factor %g not in (0, 0.5]", ErrInvalidFactor, f)
	}
	return nil
}

func checkSkewFactor(f float64) error {
	if !(f >= 0 && f < 1) {
		return fmt.Errorf("%w: skew factor %g not in [0, 1)", ErrInvalidFactor, f)
	}
	return nil
}

func equalLength(l, want float64) bool {
	return math.Abs(l-want) <= segmentLengthTolerance*want
}
