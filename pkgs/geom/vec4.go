// Package geom provides the 4-component vector and 4x4 matrix arithmetic
// the scene layer and the transform built-in lean on. Everything here is
// pure and stateless: element-wise loops, no control flow beyond them.
package geom

import "math"

// Epsilon is the tolerance used by approximate comparisons.
const Epsilon = 1e-9

// Vec4 is a 4-component vector. Positions use W == 1, directions W == 0.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 constructs a vector from all four components.
func V4(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Point constructs a position vector (W == 1).
func Point(x, y, z float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: 1} }

// Splat broadcasts a scalar into all four components.
func Splat(s float64) Vec4 { return Vec4{X: s, Y: s, Z: s, W: s} }

// Add returns the element-wise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the element-wise difference.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Neg returns the negated vector.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul returns the element-wise product.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div returns the element-wise quotient.
func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Dot returns the 4-component dot product.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns the squared Euclidean length.
func (v Vec4) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vec4) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalized returns the unit-length vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec4) Normalized() Vec4 {
	len := v.Length()
	if len < Epsilon {
		return v
	}
	return v.Scale(1 / len)
}

// ApproxEqual reports component-wise equality within Epsilon.
func (v Vec4) ApproxEqual(o Vec4) bool {
	return math.Abs(v.X-o.X) < Epsilon &&
		math.Abs(v.Y-o.Y) < Epsilon &&
		math.Abs(v.Z-o.Z) < Epsilon &&
		math.Abs(v.W-o.W) < Epsilon
}
