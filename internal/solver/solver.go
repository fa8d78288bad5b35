// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package solver finds real roots of low-degree polynomials.
//
// The cubic solver follows Jim Blinn's "How to Solve a Cubic Equation" as
// presented at https://momentsingraphics.de/CubicRoots.html.
package solver

import "math"

// boundaryEps is the slack allowed when testing whether a root lies in [0, 1].
const boundaryEps = 1e-9

// Quadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending order.
// A vanishing a degrades to the linear equation b*x + c = 0.
func Quadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	disc := sc1*sc1 - 4*sc0
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	}

	// Avoid cancellation by never subtracting nearly equal values.
	r1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	r2 := sc0 / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// Cubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0, unordered.
// A vanishing a degrades to Quadratic.
func Cubic(a, b, c, d float64) []float64 {
	const third = 1.0 / 3.0
	inv := 1 / a
	c2 := b * third * inv
	c1 := c * third * inv
	c0 := d * inv
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return Quadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0:
		t := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t - c2, -2*t - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * third
	sin, cos := math.Sincos(th)
	ss3 := sin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*cos - c2,
		t*0.5*(-cos+ss3) - c2,
		t*0.5*(-cos-ss3) - c2,
	}
}

// CubicInUnit returns the smallest root of the cubic inside [0, 1],
// snapping roots within a tiny epsilon of the boundary onto it.
func CubicInUnit(a, b, c, d float64) (float64, bool) {
	best, found := 0.0, false
	for _, r := range Cubic(a, b, c, d) {
		if r < -boundaryEps || r > 1+boundaryEps {
			continue
		}
		r = math.Min(math.Max(r, 0), 1)
		if !found || r < best {
			best, found = r, true
		}
	}
	return best, found
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
