// Package keyframes evaluates keyframe vector animations.
//
// # Overview
//
// An animation is authored in a design tool and exported as discrete
// keyframes: cubic Bézier paths, stroke widths, transform components and
// gradient colors, each keyed at integer frames and joined by timing
// curves. keyframes turns such a model into the exact renderable state of
// every feature at any fractional frame, leaving drawing to an adapter.
//
// # Quick Start
//
//	anim, err := keyframes.NewAnimation(desc)
//	if err != nil {
//	    return err
//	}
//	ev, err := keyframes.NewEvaluator(anim, keyframes.WithBounds(512, 512))
//	if err != nil {
//	    return err
//	}
//	ev.SetFrameProgress(12.5)
//	for _, st := range ev.States() {
//	    // st.Path, st.Transform, st.StrokeWidth, st.Shader ...
//	}
//
// # Architecture
//
// The package is organized into:
//   - Model: Animation, Feature, Group, Track, sealed once by NewAnimation
//   - Timing: Easing, CubicBezier, presets backed by fogleman/ease
//   - Evaluation: Composer (group hierarchy), GradientCache, Evaluator
//   - Lifecycle: Animator, Clock
//   - Adapters: render (drawing contract), render/raster (x/image),
//     stream (MQTT frame publishing)
//
// # Coordinate System
//
// Canvas coordinates put the origin at the top-left with Y increasing
// downwards. Transform tracks store positions and anchors as fractions of
// the canvas size; rotations are in degrees.
//
// # Concurrency
//
// A sealed Animation is immutable and may be shared between goroutines.
// Evaluators and animators own mutable per-frame state and each belong to
// one goroutine.
package keyframes
