package keyframes

import (
	"math"
	"testing"
)

func TestCubicBezierIdentity(t *testing.T) {
	curves := []CubicBezier{
		Linear,
		{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75},
		{X1: 0.5, Y1: 0.5, X2: 0.5, Y2: 0.5},
	}
	for _, c := range curves {
		for i := 0; i <= 1000; i++ {
			p := float64(i) / 1000
			if got := c.Ease(p); math.Abs(got-p) > 1e-12 {
				t.Fatalf("%+v.Ease(%v) = %v, want %v", c, p, got, p)
			}
		}
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curves := []CubicBezier{
		{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1},
		{X1: 0.68, Y1: -0.55, X2: 0.27, Y2: 1.55},
		{X1: 0, Y1: 1, X2: 0, Y2: 1},
	}
	for _, c := range curves {
		tests := []struct{ p, want float64 }{
			{-1, 0}, {0, 0}, {1, 1}, {2, 1},
		}
		for _, tt := range tests {
			if got := c.Ease(tt.p); got != tt.want {
				t.Errorf("%+v.Ease(%v) = %v, want %v", c, tt.p, got, tt.want)
			}
		}
	}
}

func TestCubicBezierKnownValues(t *testing.T) {
	easeInOut, _ := Preset("ease-in-out")
	if got := easeInOut.Ease(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ease-in-out(0.5) = %v, want 0.5 by symmetry", got)
	}

	// Symmetric curves satisfy f(p) + f(1-p) = 1.
	for _, p := range []float64{0.1, 0.25, 0.4} {
		a, b := easeInOut.Ease(p), easeInOut.Ease(1-p)
		if math.Abs(a+b-1) > 1e-9 {
			t.Errorf("ease-in-out(%v) + ease-in-out(%v) = %v, want 1", p, 1-p, a+b)
		}
	}

	// The curve must actually solve x(t) = p.
	c := CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	for _, p := range []float64{0.05, 0.3, 0.6, 0.95} {
		ax, bx, cx := bezierCoefficients(c.X1, c.X2)
		ay, by, cy := bezierCoefficients(c.Y1, c.Y2)
		y := c.Ease(p)
		// Find t by bisection and compare.
		lo, hi := 0.0, 1.0
		for i := 0; i < 100; i++ {
			mid := (lo + hi) / 2
			if ((ax*mid+bx)*mid+cx)*mid < p {
				lo = mid
			} else {
				hi = mid
			}
		}
		want := ((ay*lo+by)*lo + cy) * lo
		if math.Abs(y-want) > 1e-9 {
			t.Errorf("Ease(%v) = %v, want %v", p, y, want)
		}
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	c := CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}
	prev := 0.0
	for i := 1; i <= 200; i++ {
		got := c.Ease(float64(i) / 200)
		if got < prev-1e-12 {
			t.Fatalf("Ease not monotonic at %d: %v < %v", i, got, prev)
		}
		prev = got
	}
}

func TestCubicBezierNonMonotonicFallsBack(t *testing.T) {
	c := CubicBezier{X1: -0.5, Y1: 0, X2: 1.5, Y2: 1}
	if got := c.Ease(0.3); got != 0.3 {
		t.Errorf("Ease(0.3) = %v, want linear fallback 0.3", got)
	}
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("no presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("PresetNames not sorted: %q >= %q", names[i-1], names[i])
		}
	}
	for _, name := range names {
		e, ok := Preset(name)
		if !ok || e == nil {
			t.Fatalf("Preset(%q) missing", name)
		}
		if got := e.Ease(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s.Ease(0) = %v, want 0", name, got)
		}
		if got := e.Ease(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s.Ease(1) = %v, want 1", name, got)
		}
	}
	if _, ok := Preset("no-such-curve"); ok {
		t.Error("Preset(unknown) reported ok")
	}
}
