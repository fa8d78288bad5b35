package keyframes

import (
	"math"
	"sort"

	"github.com/fogleman/ease"

	"github.com/gogpu/keyframes/internal/solver"
)

// Easing maps linear progress through a keyframe segment to eased progress.
// Implementations must be pure: the same input always yields the same output.
// The result is not clamped; curves may overshoot [0, 1].
type Easing interface {
	Ease(p float64) float64
}

// CubicBezier is the two-control-point cubic Bezier timing function used by
// motion design tools. The curve runs from (0,0) through (X1,Y1) and (X2,Y2)
// to (1,1).
type CubicBezier struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Linear is the identity timing curve.
var Linear = CubicBezier{X1: 0, Y1: 0, X2: 1, Y2: 1}

// newtonSteps polishes the closed-form root; two steps reach full precision
// for every curve with monotonic x.
const newtonSteps = 2

// Ease returns y(t) where t solves x(t) = p.
func (c CubicBezier) Ease(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if c.X1 == c.Y1 && c.X2 == c.Y2 {
		return p
	}
	// x(t) is monotonic only while both handles stay inside the unit
	// interval horizontally.
	if c.X1 < 0 || c.X1 > 1 || c.X2 < 0 || c.X2 > 1 {
		return p
	}

	ax, bx, cx := bezierCoefficients(c.X1, c.X2)
	t, ok := solver.CubicInUnit(ax, bx, cx, -p)
	if !ok {
		return p
	}
	for i := 0; i < newtonSteps; i++ {
		dx := (3*ax*t+2*bx)*t + cx
		if dx == 0 {
			break
		}
		next := t - (((ax*t+bx)*t+cx)*t-p)/dx
		if next < 0 || next > 1 {
			break
		}
		t = next
	}

	ay, by, cy := bezierCoefficients(c.Y1, c.Y2)
	return ((ay*t+by)*t + cy) * t
}

// bezierCoefficients expands 3(1-t)^2 t p1 + 3(1-t) t^2 p2 + t^3 into
// a*t^3 + b*t^2 + c*t.
func bezierCoefficients(p1, p2 float64) (a, b, c float64) {
	c = 3 * p1
	b = 3*(p2-p1) - c
	a = 1 - c - b
	return a, b, c
}

// EaseFunc adapts a plain easing function to the Easing interface.
type EaseFunc func(float64) float64

// Ease calls f(p).
func (f EaseFunc) Ease(p float64) float64 {
	return f(p)
}

// pinned adapts f so that it maps 0 to 0 and 1 to 1 exactly, like
// CubicBezier.Ease.
func pinned(f func(float64) float64) Easing {
	return EaseFunc(func(p float64) float64 {
		switch {
		case p <= 0:
			return 0
		case p >= 1:
			return 1
		}
		return f(p)
	})
}

var presets = map[string]Easing{
	"linear":       Linear,
	"in-quad":      pinned(ease.InQuad),
	"out-quad":     pinned(ease.OutQuad),
	"in-out-quad":  pinned(ease.InOutQuad),
	"in-cubic":     pinned(ease.InCubic),
	"out-cubic":    pinned(ease.OutCubic),
	"in-out-cubic": pinned(ease.InOutCubic),
	"in-sine":      pinned(ease.InSine),
	"out-sine":     pinned(ease.OutSine),
	"in-out-sine":  pinned(ease.InOutSine),
	"in-back":      pinned(ease.InBack),
	"out-back":     pinned(ease.OutBack),
	"in-out-back":  pinned(ease.InOutBack),
	"out-bounce":   pinned(ease.OutBounce),
	"out-elastic":  pinned(ease.OutElastic),
	"ease":         CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1},
	"ease-in":      CubicBezier{X1: 0.42, Y1: 0, X2: 1, Y2: 1},
	"ease-out":     CubicBezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1},
	"ease-in-out":  CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1},
	"hold":         pinned(math.Floor),
}

// Preset returns a named easing. Names follow the CSS keywords
// ("ease-in-out") and Penner's equations ("in-out-quad", "out-bounce").
func Preset(name string) (Easing, bool) {
	e, ok := presets[name]
	return e, ok
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
