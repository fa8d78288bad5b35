package keyframes

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsClose(a, b Point) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func matricesClose(a, b Matrix) bool {
	return almostEqual(a.A, b.A) && almostEqual(a.B, b.B) && almostEqual(a.C, b.C) &&
		almostEqual(a.D, b.D) && almostEqual(a.E, b.E) && almostEqual(a.F, b.F)
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale about center", ScaleAbout(2, 2, 5, 5), Pt(5, 5), Pt(5, 5)},
		{"scale about center moves others", ScaleAbout(2, 2, 5, 5), Pt(6, 5), Pt(7, 5)},
		{"translate after scale", Translate(1, 0).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 2)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(1, 0)), Pt(1, 1), Pt(4, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsClose(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"composite", Translate(4, 2).Multiply(Rotate(1.1)).Multiply(Scale(3, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Multiply(tt.m.Invert()); !matricesClose(got, Identity()) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
		})
	}

	if got := Scale(0, 0).Invert(); got != Identity() {
		t.Errorf("singular Invert() = %+v, want identity", got)
	}
}

func TestMatrixIsZero(t *testing.T) {
	if !(Matrix{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if Identity().IsZero() {
		t.Error("identity should not report IsZero")
	}
}

func TestMatrixMultiplyAssociative(t *testing.T) {
	a := Translate(10, 20).Multiply(Rotate(0.3))
	b := Scale(1.5, 0.75).Multiply(Translate(-4, 9))
	c := Rotate(-1.2).Multiply(Scale(2, 2))

	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !matricesClose(left, right) {
		t.Errorf("(a*b)*c = %+v, a*(b*c) = %+v", left, right)
	}
}
