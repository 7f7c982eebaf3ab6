package dragon

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as the difference between two points.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// VecFromAngle returns the unit vector at angle th, in radians, measured from the
// positive x axis towards positive y.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o. It is
// positive when o turns from v towards positive y, which is how the rounded
// encoder picks the sweep of each corner.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x), in (-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to NaNs.
func (v Vec2) Normalize() Vec2 { return v.Mul(1 / v.Hypot()) }

// Turn90 returns v rotated a quarter turn towards positive y.
func (v Vec2) Turn90() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

func (v Vec2) Negate() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }
