// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/keyframes"
)

func TestBuild(t *testing.T) {
	a, err := Build(DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, Canvas, a.Canvas)
	assert.Equal(t, 48, a.FrameCount)
	assert.Len(t, a.Groups, 2)
	for _, name := range []string{Background, Ring, Blob, Badge} {
		_, ok := a.FeatureIndex(name)
		assert.True(t, ok, "missing feature %q", name)
	}
}

func TestBuildRejectsEmptyTimeline(t *testing.T) {
	p := DefaultParams()
	p.FrameCount = 0
	_, err := Build(p)
	assert.Error(t, err)
}

func TestBuildShortAnimation(t *testing.T) {
	p := DefaultParams()
	p.FrameCount = 1
	p.Easing = nil
	a, err := Build(p)
	require.NoError(t, err)

	ev, err := keyframes.NewEvaluator(a)
	require.NoError(t, err)
	ev.SetFrameProgress(1)
}

func TestEvaluateLoop(t *testing.T) {
	a, err := Build(DefaultParams())
	require.NoError(t, err)
	ev, err := keyframes.NewEvaluator(a, keyframes.WithBounds(200, 200))
	require.NoError(t, err)

	ring, _ := a.FeatureIndex(Ring)
	blob, _ := a.FeatureIndex(Blob)
	badge, _ := a.FeatureIndex(Badge)
	bg, _ := a.FeatureIndex(Background)

	center := keyframes.Pt(50, 50)
	for frame := 0.0; frame <= float64(a.FrameCount); frame += 0.5 {
		ev.SetFrameProgress(frame)

		// The ring spins about its own center, which stays on the canvas center.
		got := ev.State(ring).Transform.TransformPoint(keyframes.Pt(0, 0))
		assert.InDelta(t, center.X, got.X, 1e-9)
		assert.InDelta(t, center.Y, got.Y, 1e-9)

		st := ev.State(blob)
		require.True(t, st.HasPath)
		assert.GreaterOrEqual(t, st.StrokeWidth, 2*2.0-1e-9)
		assert.LessOrEqual(t, st.StrokeWidth, 2*6.0+1e-9)

		// Pulsing scales the blob about its own origin, so the orbit radius
		// stays 25.
		pos := st.Transform.TransformPoint(keyframes.Pt(0, 0))
		r := math.Hypot(pos.X-center.X, pos.Y-center.Y)
		assert.InDelta(t, 25, r, 1e-6)

		assert.False(t, ev.State(badge).HasPath)
		assert.NotNil(t, ev.State(bg).Shader)
	}

	// Both ends of the loop coincide.
	ev.SetFrameProgress(0)
	start := ev.State(blob).Path.Clone()
	ev.SetFrameProgress(float64(a.FrameCount))
	end := ev.State(blob).Path
	require.True(t, start.SameTopology(end))
	assert.InDelta(t, start.Subpaths[0].Start.X, end.Subpaths[0].Start.X, 1e-6)
	assert.InDelta(t, start.Subpaths[0].Start.Y, end.Subpaths[0].Start.Y, 1e-6)
}
