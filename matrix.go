package keyframes

import "math"

// Matrix is a 2D affine transform mapping a point (x, y) to
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Feature, group and viewport transforms are all Matrix values. The zero
// value is not the identity; see IsZero.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves every point in place.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale scales points about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// ScaleAbout scales points about the fixed point (px, py).
func ScaleAbout(sx, sy, px, py float64) Matrix {
	return Matrix{A: sx, C: px * (1 - sx), E: sy, F: py * (1 - sy)}
}

// Rotate rotates points by angle radians. On a y-down canvas a positive
// angle turns clockwise.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m·n: the transform applying n first and m second.
// Composing a parent with a child is parent.Multiply(child).
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse of m. A singular m (a viewport with a zero
// scale) yields the identity.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsZero reports whether m is the zero value. Optional matrices, such as
// Substitute.Transform, use it to mean "not set".
func (m Matrix) IsZero() bool {
	return m == Matrix{}
}
