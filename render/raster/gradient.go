// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"

	"github.com/gogpu/keyframes"
)

// gradientImage is an unbounded source image that samples a linear
// gradient at pixel centers.
type gradientImage struct {
	g keyframes.LinearGradient
}

var gradientBounds = image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)

func (*gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (*gradientImage) Bounds() image.Rectangle { return gradientBounds }

func (gi *gradientImage) At(x, y int) color.Color {
	return gi.g.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}
