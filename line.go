package dragon

// Line is a segment from P0 to P1. Dragon curves are made of them: every fold
// replaces one line by two, and the encoders measure and cut corners along them.
type Line struct {
	P0, P1 Point
}

func (l Line) Vec() Vec2 { return l.P1.Sub(l.P0) }

func (l Line) Length() float64 { return l.Vec().Hypot() }

// Eval returns the point at parameter t, where t = 0 is P0 and t = 1 is P1.
func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }

// Angle returns the direction of the line, normalized to [0, 2π).
func (l Line) Angle() float64 { return wrapAngle(l.Vec().Angle()) }

// Turn reports the direction of the corner between l and the line that follows
// it: positive when next turns towards positive y, negative when it turns
// towards negative y, and zero when both are parallel.
func (l Line) Turn(next Line) float64 { return l.Vec().Cross(next.Vec()) }
