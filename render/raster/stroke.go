// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/keyframes"
)

// joinSides is the polygon resolution of round joins.
const joinSides = 16

// strokeBuilder expands a path outline into filled polygons: one quad per
// flattened segment and a round disc at every interior vertex. All polygons
// share one winding direction so overlaps never cancel in the rasterizer.
type strokeBuilder struct {
	points []keyframes.Point
}

func (sb *strokeBuilder) build(ras *vector.Rasterizer, p *keyframes.Path, hw float64) {
	for _, sp := range p.Subpaths {
		sb.flatten(sp)
		pts := sb.points
		if len(pts) < 2 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			quad(ras, pts[i-1], pts[i], hw)
		}
		last := len(pts) - 1
		for i := 1; i < last; i++ {
			disc(ras, pts[i], hw)
		}
		if sp.Closed {
			disc(ras, pts[0], hw)
			if pts[last] != pts[0] {
				quad(ras, pts[last], pts[0], hw)
				disc(ras, pts[last], hw)
			}
		}
	}
}

// flatten approximates the subpath by a polyline. Each cubic is split
// into a number of steps proportional to its control polygon length.
func (sb *strokeBuilder) flatten(sp keyframes.Subpath) {
	sb.points = append(sb.points[:0], sp.Start)
	cur := sp.Start
	for _, seg := range sp.Segments {
		l := cur.Distance(seg.Control1) + seg.Control1.Distance(seg.Control2) + seg.Control2.Distance(seg.Point)
		n := min(max(int(math.Ceil(l/4)), 1), 64)
		if seg.Control1 == cur && seg.Control2 == seg.Point {
			n = 1
		}
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			sb.points = append(sb.points, cubicAt(cur, seg.Control1, seg.Control2, seg.Point, t))
		}
		cur = seg.Point
	}
}

func cubicAt(p0, p1, p2, p3 keyframes.Point, t float64) keyframes.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return keyframes.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quad(ras *vector.Rasterizer, p0, p1 keyframes.Point, hw float64) {
	d := p1.Sub(p0)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := keyframes.Pt(-d.Y/l*hw, d.X/l*hw)
	moveTo(ras, p0.Add(n))
	lineTo(ras, p1.Add(n))
	lineTo(ras, p1.Sub(n))
	lineTo(ras, p0.Sub(n))
	ras.ClosePath()
}

// disc winds in the same direction as quad.
func disc(ras *vector.Rasterizer, c keyframes.Point, r float64) {
	moveTo(ras, keyframes.Pt(c.X+r, c.Y))
	for i := 1; i < joinSides; i++ {
		a := -2 * math.Pi * float64(i) / joinSides
		lineTo(ras, keyframes.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a)))
	}
	ras.ClosePath()
}

func moveTo(ras *vector.Rasterizer, p keyframes.Point) {
	ras.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(ras *vector.Rasterizer, p keyframes.Point) {
	ras.LineTo(float32(p.X), float32(p.Y))
}
