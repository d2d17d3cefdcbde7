package geom

import "math"

// Mat4 is a 4x4 matrix in row-major order: element (row, col) is at
// index row*4 + col.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns the matrix translating points by (x, y, z).
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Scaling returns the matrix scaling points by (x, y, z).
func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns the rotation about the X axis by angle radians.
func RotationX(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns the rotation about the Y axis by angle radians.
func RotationY(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns the rotation about the Z axis by angle radians.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sin(angle), math.Cos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationAxis returns the rotation about an arbitrary axis by angle
// radians. The axis is normalized first; a near-zero axis yields identity.
func RotationAxis(angle float64, axis Vec4) Mat4 {
	n := axis.Normalized()
	if n.LengthSquared() < Epsilon {
		return Identity()
	}
	x, y, z := n.X, n.Y, n.Z
	s, c := math.Sin(angle), math.Cos(angle)
	t := 1 - c
	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col).
func (m Mat4) At(row, col int) float64 { return m[row*4+col] }

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = m[row*4+col]
		}
	}
	return out
}

// ApproxEqual reports element-wise equality within Epsilon.
func (m Mat4) ApproxEqual(o Mat4) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) >= Epsilon {
			return false
		}
	}
	return true
}
