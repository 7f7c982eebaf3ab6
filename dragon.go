package dragon

import (
	"fmt"
	"iter"
	"math"
)

const (
	piOverFour = math.Pi / 4
	piOverTwo  = math.Pi / 2

	// MaxAddressableOrder is the largest order whose vertex count fits in an int on
	// 64-bit platforms. Orders this large will exhaust memory long before that; see
	// [Options.MaxOrder] for the practical ceiling.
	MaxAddressableOrder = 62

	// Vertex slices are preallocated up to this order. Above it they grow by
	// appending so that an absurd order fails on allocation gradually instead of
	// in one make call.
	maxPreallocOrder = 24
)

// wrapAngle maps th into [0, 2π). Angles produced by the construction are never more
// than one turn out of range, so a single correction suffices.
func wrapAngle(th float64) float64 {
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th -= 2 * math.Pi
	}
	return th
}

// fold is a pending segment of the construction: the line from p0 to p1, pointing in
// direction theta, to be folded order more times towards sign.
type fold struct {
	order  int
	theta  float64
	sign   float64
	p0, p1 Point
}

// Vertices returns an iterator over the vertices of the Heighway dragon of the given
// order spanning start and end. It yields 2^order points, in drawing order, and does
// not yield start itself. The last point yielded is end.
//
// Each segment is treated as the hypotenuse of an isosceles right triangle whose apex
// lies 45° to the fold side of the segment. The segment is replaced by the two legs of
// that triangle, the first folded to the positive side and the second to the negative
// side, until order folds have been applied.
//
// Vertices does not validate its arguments. A negative order yields nothing and
// coincident points yield 2^order copies of end. Use [Generate] for a checked
// variant.
func Vertices(order int, start, end Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if order < 0 {
			return
		}
		// Each step replaces one fold with two, so the stack never holds more than
		// order+1 entries. Right halves are pushed first so that left halves are
		// fully resolved before them.
		stack := make([]fold, 1, order+1)
		stack[0] = fold{
			order: order,
			theta: Line{start, end}.Angle(),
			sign:  1,
			p0:    start,
			p1:    end,
		}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.order == 0 {
				if !yield(f.p1) {
					return
				}
				continue
			}

			r := f.p1.Sub(f.p0).Hypot()
			th := wrapAngle(f.theta + f.sign*piOverFour)
			apex := f.p0.Translate(VecFromAngle(th).Mul(r * math.Sqrt2 / 2))
			stack = append(stack,
				fold{
					order: f.order - 1,
					theta: wrapAngle(th - f.sign*piOverTwo),
					sign:  -1,
					p0:    apex,
					p1:    f.p1,
				},
				fold{
					order: f.order - 1,
					theta: th,
					sign:  1,
					p0:    f.p0,
					p1:    apex,
				},
			)
		}
	}
}

// Generate returns the vertices of the Heighway dragon of the given order spanning
// start and end, as described by [Vertices]. The returned slice is freshly allocated
// and has exactly 2^order elements.
//
// Generate rejects negative or unaddressable orders with [ErrInvalidOrder],
// non-finite points with [ErrInvalidPoint], and coincident points with
// [ErrDegenerateSegment]. It imposes no other limit on the order; see [Build] for
// a guarded entry point.
func Generate(order int, start, end Point) ([]Point, error) {
	if err := checkCurve(order, start, end); err != nil {
		return nil, err
	}
	var out []Point
	if order <= maxPreallocOrder {
		out = make([]Point, 0, 1<<order)
	}
	for v := range Vertices(order, start, end) {
		out = append(out, v)
	}
	return out, nil
}

func checkCurve(order int, start, end Point) error {
	if order < 0 || order > MaxAddressableOrder {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if !start.IsFinite() {
		return fmt.Errorf("%w: start %s", ErrInvalidPoint, start)
	}
	if !end.IsFinite() {
		return fmt.Errorf("%w: end %s", ErrInvalidPoint, end)
	}
	if start == end {
		return fmt.Errorf("%w: %s", ErrDegenerateSegment, start)
	}
	return nil
}

// VertexCount returns the number of vertices produced for the given order, 2^order.
func VertexCount(order int) int {
	return 1 << order
}
