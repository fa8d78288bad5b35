// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/keyframes"

// Canvas is the drawing surface of the draw pass. All geometry handed to a
// Canvas is already in device space.
type Canvas interface {
	// FillPath fills p with a solid color using the non-zero winding rule.
	FillPath(p *keyframes.Path, c keyframes.RGBA)

	// FillPathGradient fills p with a two-stop linear gradient.
	FillPathGradient(p *keyframes.Path, g keyframes.LinearGradient)

	// StrokePath strokes p with a solid color and line width.
	StrokePath(p *keyframes.Path, c keyframes.RGBA, width float64)

	// DrawSubstitute draws an externally supplied drawable under the
	// device transform m.
	DrawSubstitute(s *keyframes.Substitute, m keyframes.Matrix)
}

// Drawer runs the draw pass. It keeps a scratch path between calls so that
// steady-state drawing does not allocate. The zero value is ready to use.
type Drawer struct {
	scratch keyframes.Path
}

// Draw draws the evaluator's current feature states onto c, in model
// order, through the evaluator's viewport.
//
// Substituted features are drawn with the viewport, feature and substitute
// transforms. Other features are filled (solid or gradient) and then
// stroked; transparent colors and empty paths are skipped.
func (d *Drawer) Draw(c Canvas, ev *keyframes.Evaluator) {
	vp := ev.Viewport().Matrix()
	states := ev.States()
	for i := range states {
		st := &states[i]
		if st.Substitute != nil {
			m := vp.Multiply(st.Transform).Multiply(st.Substitute.Matrix())
			c.DrawSubstitute(st.Substitute, m)
			continue
		}
		if !st.HasPath || st.Path.IsEmpty() {
			continue
		}
		d.scratch.SetTransformed(st.Path, vp)

		if !st.FillColor.IsTransparent() {
			if st.Shader != nil {
				c.FillPathGradient(&d.scratch, st.Shader.Transform(vp))
			} else {
				c.FillPath(&d.scratch, st.FillColor)
			}
		}
		if !st.StrokeColor.IsTransparent() && st.StrokeWidth > 0 {
			c.StrokePath(&d.scratch, st.StrokeColor, st.StrokeWidth)
		}
	}
}

// Draw draws ev onto c with a temporary Drawer.
func Draw(c Canvas, ev *keyframes.Evaluator) {
	var d Drawer
	d.Draw(c, ev)
}
