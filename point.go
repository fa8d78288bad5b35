package keyframes

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// MulPoint returns the component-wise product of two points.
// Used to map canvas fractions onto canvas units.
func (p Point) MulPoint(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p and t=1 returns q bit for bit.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: lerp(p.X, q.X, t),
		Y: lerp(p.Y, q.Y, t),
	}
}

// lerp is exact at both ends, unlike a + (b-a)*t.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
