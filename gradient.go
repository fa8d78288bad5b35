package keyframes

import "math"

// DefaultGradientPrecision is the number of gradient samples precomputed
// per second of playback.
const DefaultGradientPrecision = 30.0

// LinearGradient describes a two-stop linear gradient shader in canvas
// space. Adapters turn it into whatever gradient object their platform uses.
type LinearGradient struct {
	Start      Point // position of StartColor
	End        Point // position of EndColor
	StartColor RGBA
	EndColor   RGBA
}

// ColorAt returns the color at canvas point (x, y), padding beyond the ends.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return g.StartColor
	}
	t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
	return g.StartColor.Lerp(g.EndColor, math.Min(math.Max(t, 0), 1))
}

// Transform returns the gradient with its endpoints transformed by m.
func (g *LinearGradient) Transform(m Matrix) LinearGradient {
	out := *g
	out.Start = m.TransformPoint(g.Start)
	out.End = m.TransformPoint(g.End)
	return out
}

// SampleCount returns the number of gradient table intervals P for an
// animation: round(precisionPerSecond * frameCount / frameRate), at least 1.
func SampleCount(precisionPerSecond float64, frameCount, frameRate int) int {
	if frameRate <= 0 {
		return 1
	}
	return max(int(math.Round(precisionPerSecond*float64(frameCount)/float64(frameRate))), 1)
}

// GradientCache trades memory for per-frame cost: it samples a feature's
// animated gradient P+1 times across the whole animation once, then
// answers every frame with a nearest-sample table lookup. The quantization
// error is bounded by the sample spacing.
type GradientCache struct {
	effect     *GradientEffect
	canvas     Size
	frameCount int
	samples    int
	table      []LinearGradient
}

// NewGradientCache creates an unprepared cache for effect. precision is in
// samples per second of playback.
func NewGradientCache(a *Animation, effect *GradientEffect, precision float64) *GradientCache {
	return &GradientCache{
		effect:     effect,
		canvas:     a.Canvas,
		frameCount: a.FrameCount,
		samples:    SampleCount(precision, a.FrameCount, a.FrameRate),
	}
}

// Samples returns P. The table holds P+1 entries.
func (c *GradientCache) Samples() int {
	return c.samples
}

// Prepared reports whether the table has been built.
func (c *GradientCache) Prepared() bool {
	return c.table != nil
}

// Prepare builds the table. Only the first call does any work.
//
// Entry i holds the gradient at frame i/P * frameCount for i in [0, P], so
// the last entry is the end-of-animation gradient.
func (c *GradientCache) Prepare() {
	if c.table != nil {
		return
	}
	p := c.samples
	table := make([]LinearGradient, p+1)
	for i := range table {
		frame := float64(i) / float64(p) * float64(c.frameCount)
		table[i] = LinearGradient{
			Start:      Pt(0, 0),
			End:        Pt(0, c.canvas.Height),
			StartColor: c.effect.Start.ValueAt(frame, LerpColor),
			EndColor:   c.effect.End.ValueAt(frame, LerpColor),
		}
	}
	c.table = table
	Logger().Debug("gradient table prepared", "samples", p+1)
}

// Lookup returns the precomputed gradient nearest below frame, preparing
// the table first if needed. The index is clamped to [0, P] so every frame,
// including out-of-range ones, maps to a valid entry.
func (c *GradientCache) Lookup(frame float64) *LinearGradient {
	c.Prepare()
	return &c.table[c.index(frame)]
}

func (c *GradientCache) index(frame float64) int {
	f := math.Floor(frame / float64(c.frameCount) * float64(c.samples))
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > float64(c.samples) {
		return c.samples
	}
	return int(f)
}
