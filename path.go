package dragon

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a circular arc from the current location to the point.
	ArcToKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case ArcToKind:
		return "ArcTo"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command. P0 is the point the command ends at. Radius
// and Sweep are only meaningful for [ArcToKind]: the arc is the shorter of the two
// circular arcs of the given radius through the current location and P0, and Sweep
// selects the one traversed in the direction of increasing angle, matching the SVG
// sweep-flag.
type PathElement struct {
	Kind   PathElementKind
	P0     Point
	Radius float64
	Sweep  bool
}

func (el PathElement) String() string {
	if el.Kind == ArcToKind {
		return fmt.Sprintf("%s(%g, %t, %s)", el.Kind, el.Radius, el.Sweep, el.P0)
	}
	return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
}

// Transform applies aff to the element. Arc radii are scaled by the transform's uniform
// scale factor and the sweep direction flips for transforms that mirror.
func (el PathElement) Transform(aff Affine) PathElement {
	out := el
	out.P0 = el.P0.Transform(aff)
	if el.Kind == ArcToKind {
		out.Radius = el.Radius * aff.UniformScale()
		if aff.Determinant() < 0 {
			out.Sweep = !el.Sweep
		}
	}
	return out
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || (el.Kind == ArcToKind && math.IsNaN(el.Radius))
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ArcTo(radius float64, sweep bool, pt Point) PathElement {
	return PathElement{Kind: ArcToKind, P0: pt, Radius: radius, Sweep: sweep}
}

// Path is a sequence of drawing commands, as produced by the path encoders.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ArcTo pushes an "arc to" element onto the path.
func (p *Path) ArcTo(radius float64, sweep bool, pt Point) { p.Push(ArcTo(radius, sweep, pt)) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with aff applied to every element.
func (p Path) Transform(aff Affine) Path {
	return slices.Collect(Transform(p.Elements(), aff))
}

// Count returns the number of elements of the given kind.
func (p Path) Count(kind PathElementKind) int {
	n := 0
	for _, el := range p {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

// Points returns the end points of the path's elements, in order.
func (p Path) Points() []Point {
	out := make([]Point, len(p))
	for i, el := range p {
		out[i] = el.P0
	}
	return out
}

func (p Path) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// Polylines flattens the path into polylines, one per subpath. Arcs are approximated by
// line segments that deviate from the true arc by at most tolerance.
//
// Each polyline starts at its subpath's initial point. Elements appearing before the
// first [MoveToKind] element start at the origin.
func (p Path) Polylines(tolerance float64) iter.Seq[[]Point] {
	return func(yield func([]Point) bool) {
		var cur []Point
		var last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				if len(cur) > 1 && !yield(cur) {
					return
				}
				cur = []Point{el.P0}
			case LineToKind:
				if cur == nil {
					cur = []Point{last}
				}
				cur = append(cur, el.P0)
			case ArcToKind:
				if cur == nil {
					cur = []Point{last}
				}
				for pt := range NewArc(last, el.P0, el.Radius, el.Sweep).Flatten(tolerance) {
					cur = append(cur, pt)
				}
			}
			last = el.P0
		}
		if len(cur) > 1 {
			yield(cur)
		}
	}
}
