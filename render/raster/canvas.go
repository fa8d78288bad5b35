// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a CPU canvas for the render package.
// It rasterizes paths onto an *image.RGBA with golang.org/x/image/vector.
//
// # Supported Features
//
//   - Solid and two-stop linear gradient fills (non-zero winding)
//   - Solid strokes with butt caps and round joins
//   - Substitutes whose Drawable is an image.Image, drawn with bilinear
//     filtering under the full device transform
//   - PNG output
//
// # Example
//
//	// Import to register the canvas
//	import _ "github.com/gogpu/keyframes/render/raster"
//
//	// Create via registry
//	c, _ := render.NewCanvas("raster", 512, 512)
//
//	// Or create directly
//	c := raster.NewCanvas(512, 512)
//	render.Draw(c, ev)
//	c.SavePNG("frame.png")
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/keyframes"
	"github.com/gogpu/keyframes/render"
)

func init() {
	render.Register("raster", func(width, height int) (render.Canvas, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
		}
		return NewCanvas(width, height), nil
	})
}

// Canvas renders onto an in-memory RGBA image.
// The Canvas is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	stroke strokeBuilder

	// Interpolator used for substitute images.
	Interpolator draw.Interpolator
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:          image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:          vector.NewRasterizer(width, height),
		Interpolator: draw.BiLinear,
	}
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col keyframes.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// FillPath fills p with a solid color.
func (c *Canvas) FillPath(p *keyframes.Path, col keyframes.RGBA) {
	c.fill(p, image.NewUniform(col.Color()))
}

// FillPathGradient fills p with a linear gradient.
func (c *Canvas) FillPathGradient(p *keyframes.Path, g keyframes.LinearGradient) {
	c.fill(p, &gradientImage{g: g})
}

// StrokePath strokes p with a solid color.
func (c *Canvas) StrokePath(p *keyframes.Path, col keyframes.RGBA, width float64) {
	if width <= 0 {
		return
	}
	c.reset()
	c.stroke.build(c.ras, p, width/2)
	c.draw(image.NewUniform(col.Color()))
}

// DrawSubstitute draws image substitutes. Other drawable types are skipped.
func (c *Canvas) DrawSubstitute(s *keyframes.Substitute, m keyframes.Matrix) {
	src, ok := s.Drawable.(image.Image)
	if !ok {
		keyframes.Logger().Warn("raster: unsupported substitute drawable", "type", fmt.Sprintf("%T", s.Drawable))
		return
	}
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	c.Interpolator.Transform(c.img, aff, src, src.Bounds(), draw.Over, nil)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) fill(p *keyframes.Path, src image.Image) {
	c.reset()
	for _, sp := range p.Subpaths {
		if len(sp.Segments) == 0 {
			continue
		}
		c.ras.MoveTo(float32(sp.Start.X), float32(sp.Start.Y))
		for _, seg := range sp.Segments {
			c.ras.CubeTo(
				float32(seg.Control1.X), float32(seg.Control1.Y),
				float32(seg.Control2.X), float32(seg.Control2.Y),
				float32(seg.Point.X), float32(seg.Point.Y),
			)
		}
		c.ras.ClosePath()
	}
	c.draw(src)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

func (c *Canvas) draw(src image.Image) {
	c.ras.Draw(c.img, c.img.Bounds(), src, image.Point{})
}
