// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package solver

import (
	"math"
	"sort"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func verifyRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sortedRoots := append([]float64(nil), roots...)
	sort.Float64s(sortedRoots)
	sortedExpected := append([]float64(nil), expected...)
	sort.Float64s(sortedExpected)

	for i := range sortedRoots {
		if !almostEqual(sortedRoots[i], sortedExpected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v, expected=%v)",
				name, i, sortedRoots[i], sortedExpected[i], sortedRoots, sortedExpected)
		}
	}
}

func TestQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"x^2 - 5 = 0", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"x^2 + 5 = 0 (no real roots)", 1, 0, 5, nil},
		{"x^2 - 2x + 1 = 0 (double root)", 1, -2, 1, []float64{1}},
		{"2x - 4 = 0 (degenerate)", 0, 2, -4, []float64{2}},
		{"0 = 0", 0, 0, 0, []float64{0}},
		{"5 = 0", 0, 0, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := Quadratic(tt.a, tt.b, tt.c)
			verifyRoots(t, tt.name, roots, tt.expected, 1e-10)
			if !sort.Float64sAreSorted(roots) {
				t.Errorf("roots %v not ascending", roots)
			}
		})
	}
}

func TestCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		expected   []float64
		epsilon    float64
	}{
		{"x^3 - 5 = 0 (one real root)", 1, 0, 0, -5, []float64{math.Cbrt(5)}, 1e-10},
		{"x^3 - x = 0", 1, 0, -1, 0, []float64{-1, 0, 1}, 1e-10},
		{"(x-1)(x-2)(x-3)", 1, -6, 11, -6, []float64{1, 2, 3}, 1e-8},
		{"x^2 - 5x + 6 = 0 (degenerate, a=0)", 0, 1, -5, 6, []float64{2, 3}, 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := Cubic(tt.a, tt.b, tt.c, tt.d)
			verifyRoots(t, tt.name, roots, tt.expected, tt.epsilon)

			for _, r := range roots {
				val := tt.a*r*r*r + tt.b*r*r + tt.c*r + tt.d
				if math.Abs(val) > 1e-6 {
					t.Errorf("root %v gives f(x) = %v, want 0", r, val)
				}
			}
		})
	}
}

func TestCubicInUnit(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		want       float64
		found      bool
	}{
		{"x^3 - x: smallest root in [0,1] is 0", 1, 0, -1, 0, 0, true},
		{"root outside [0,1]", 1, 0, 0, -8, 0, false},
		{"x - 0.25 as degenerate cubic", 0, 0, 1, -0.25, 0.25, true},
		{"(x-0.5)(x-0.75)(x-2)", 1, -3.25, 2.875, -0.75, 0.5, true},
		{"root just above 1 snaps to 1", 0, 0, 1, -(1 + 1e-12), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := CubicInUnit(tt.a, tt.b, tt.c, tt.d)
			if found != tt.found {
				t.Fatalf("CubicInUnit found = %v, want %v", found, tt.found)
			}
			if found && !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("CubicInUnit = %v, want %v", got, tt.want)
			}
			if found && (got < 0 || got > 1) {
				t.Errorf("CubicInUnit = %v outside [0,1]", got)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect bool
	}{
		{"positive", 1.0, true},
		{"negative", -1.0, true},
		{"zero", 0.0, true},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFinite(tt.x); got != tt.expect {
				t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.expect)
			}
		})
	}
}
