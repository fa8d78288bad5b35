// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sample builds the demo animation rendered by kfrender.
//
// The model is assembled in code; loading authored files is left to
// importers outside this module.
package sample

import (
	"fmt"

	"github.com/gogpu/keyframes"
)

// Canvas is the authoring size of the demo.
var Canvas = keyframes.Size{Width: 100, Height: 100}

// Feature and group names of the demo.
const (
	Background = "background"
	Blob       = "blob"
	Ring       = "ring"
	Badge      = "badge"

	OrbitGroup = 1
	PulseGroup = 2
)

// Params parameterizes the demo.
type Params struct {
	FrameRate     int
	FrameCount    int
	Easing        keyframes.Easing
	Fill          keyframes.RGBA
	Stroke        keyframes.RGBA
	GradientStart keyframes.RGBA
	GradientEnd   keyframes.RGBA
}

// DefaultParams returns a two second loop at 24 fps.
func DefaultParams() Params {
	e, _ := keyframes.Preset("ease-in-out")
	return Params{
		FrameRate:     24,
		FrameCount:    48,
		Easing:        e,
		Fill:          keyframes.MustHex("#ff7043"),
		Stroke:        keyframes.MustHex("#263238"),
		GradientStart: keyframes.MustHex("#42a5f5"),
		GradientEnd:   keyframes.MustHex("#7e57c2"),
	}
}

// Build assembles and seals the demo:
//
//   - background: full-canvas rectangle with an animated gradient
//   - ring: stroked circle in the orbit group, which spins about the center
//   - blob: square morphing into a diamond and back in the pulse group,
//     a child of orbit that scales up and down
//   - badge: pathless feature meant to be substituted by an image
func Build(p Params) (*keyframes.Animation, error) {
	n := p.FrameCount
	if n <= 0 {
		return nil, fmt.Errorf("sample: frame count %d", n)
	}
	ease := p.Easing
	if ease == nil {
		ease = keyframes.Linear
	}

	orbit := keyframes.Group{
		ID: OrbitGroup,
		Transform: keyframes.TransformTracks{
			Position: keyframes.Constant(keyframes.Pt(0.5, 0.5)),
			Rotation: track(n, keyframes.Linear, 0.0, 360.0),
		},
	}
	pulse := keyframes.Group{
		ID:       PulseGroup,
		ParentID: OrbitGroup,
		Transform: keyframes.TransformTracks{
			Position: keyframes.Constant(keyframes.Pt(0.25, 0)),
			Scale:    track(n, ease, keyframes.Pt(1, 1), keyframes.Pt(1.5, 1.5), keyframes.Pt(1, 1)),
		},
	}

	square := keyframes.NewPathBuilder().
		MoveTo(-10, -10).LineTo(10, -10).LineTo(10, 10).LineTo(-10, 10).Close().Path()
	diamond := keyframes.NewPathBuilder().
		MoveTo(0, -14).LineTo(14, 0).LineTo(0, 14).LineTo(-14, 0).Close().Path()

	features := []keyframes.Feature{
		{
			Name:      Background,
			Path:      keyframes.Constant(keyframes.NewPathBuilder().Rectangle(0, 0, Canvas.Width, Canvas.Height).Path()),
			FillColor: keyframes.RGB(1, 1, 1),
			Gradient: &keyframes.GradientEffect{
				Type:  keyframes.GradientLinear,
				Start: track(n, keyframes.Linear, p.GradientStart, p.GradientEnd, p.GradientStart),
				End:   track(n, keyframes.Linear, p.GradientEnd, p.GradientStart, p.GradientEnd),
			},
		},
		{
			Name:            Ring,
			GroupID:         OrbitGroup,
			Path:            keyframes.Constant(circle(30)),
			BaseStrokeWidth: 3,
			StrokeColor:     p.Stroke,
		},
		{
			Name:        Blob,
			GroupID:     PulseGroup,
			Path:        track(n, ease, square, diamond, square),
			StrokeWidth: track(n, ease, 2.0, 6.0, 2.0),
			FillColor:   p.Fill,
			StrokeColor: p.Stroke,
		},
		{
			Name: Badge,
			Transform: keyframes.TransformTracks{
				Position: track(n, ease, keyframes.Pt(0.05, 0.05), keyframes.Pt(0.75, 0.05)),
			},
		},
	}

	return keyframes.NewAnimation(keyframes.Animation{
		Canvas:     Canvas,
		FrameRate:  p.FrameRate,
		FrameCount: n,
		Groups:     []keyframes.Group{orbit, pulse},
		Features:   features,
	})
}

// track spreads values evenly over [0, n], easing every segment with e.
// Values that would share a frame on very short animations are dropped.
func track[T any](n int, e keyframes.Easing, values ...T) *keyframes.Track[T] {
	keys := make([]keyframes.Keyframe[T], 0, len(values))
	for i, v := range values {
		frame := 0
		if len(values) > 1 {
			frame = i * n / (len(values) - 1)
		}
		if len(keys) > 0 && keys[len(keys)-1].Frame >= frame {
			continue
		}
		keys = append(keys, keyframes.Keyframe[T]{Frame: frame, Value: v})
	}
	easings := make([]keyframes.Easing, len(keys)-1)
	for i := range easings {
		easings[i] = e
	}
	return keyframes.MustTrack(keys, easings)
}

// circle approximates a circle of radius r about the origin with four
// cubic arcs.
func circle(r float64) keyframes.Path {
	const kappa = 0.5522847498
	k := r * kappa
	return keyframes.NewPathBuilder().
		MoveTo(r, 0).
		CubicTo(r, k, k, r, 0, r).
		CubicTo(-k, r, -r, k, -r, 0).
		CubicTo(-r, -k, -k, -r, 0, -r).
		CubicTo(k, -r, r, -k, r, 0).
		Close().
		Path()
}
