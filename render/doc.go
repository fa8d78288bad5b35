// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws evaluated keyframes animations onto a Canvas.
//
// The engine in package keyframes produces, for every feature, a path in
// canvas space, colors, a stroke width and an optional gradient. This
// package defines the small drawing contract adapters implement and the
// draw pass that feeds it, so each output (raster images, recordings,
// platform canvases) only has to fill and stroke paths.
//
// # Canvas Implementations
//
//   - Recorder: keeps every call in memory, for tests and replay
//   - raster.Canvas: CPU rasterizer on *image.RGBA (package render/raster)
//
// Implementations register themselves by name in init, following the
// database/sql driver pattern:
//
//	import _ "github.com/gogpu/keyframes/render/raster"
//
//	c, err := render.NewCanvas("raster", 512, 512)
//
// # Usage
//
//	ev.SetFrameProgress(frame)
//	render.Draw(c, ev)
package render
