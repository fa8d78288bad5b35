package keyframes

import "fmt"

// Segment is a cubic Bezier segment. It starts at the end point of the
// previous segment (or the subpath start) and ends at Point.
// Straight lines are stored as cubics whose handles sit on the endpoints,
// so every keyframe of a morphing path shares one segment type.
type Segment struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Subpath is one contour of a path.
type Subpath struct {
	Start    Point
	Segments []Segment
	Closed   bool
}

// Path is a list of cubic Bezier subpaths.
//
// Two paths can be interpolated point by point only when they have the same
// topology: the same number of subpaths and the same number of segments in
// each subpath. Feature path tracks are checked for this when the animation
// is sealed.
type Path struct {
	Subpaths []Subpath
}

// Topology returns the number of segments in each subpath.
func (p Path) Topology() []int {
	topo := make([]int, len(p.Subpaths))
	for i, sp := range p.Subpaths {
		topo[i] = len(sp.Segments)
	}
	return topo
}

// SameTopology reports whether p and q can be interpolated point by point.
func (p Path) SameTopology(q Path) bool {
	if len(p.Subpaths) != len(q.Subpaths) {
		return false
	}
	for i := range p.Subpaths {
		if len(p.Subpaths[i].Segments) != len(q.Subpaths[i].Segments) {
			return false
		}
	}
	return true
}

// PointCount returns the number of points, counting control handles.
func (p Path) PointCount() int {
	n := 0
	for _, sp := range p.Subpaths {
		n += 1 + 3*len(sp.Segments)
	}
	return n
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	for _, sp := range p.Subpaths {
		if len(sp.Segments) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	out := Path{Subpaths: make([]Subpath, len(p.Subpaths))}
	for i, sp := range p.Subpaths {
		out.Subpaths[i] = Subpath{
			Start:    sp.Start,
			Segments: append([]Segment(nil), sp.Segments...),
			Closed:   sp.Closed,
		}
	}
	return out
}

// Transform returns a copy of the path with every point transformed by m.
func (p Path) Transform(m Matrix) Path {
	out := p.Clone()
	out.TransformInPlace(m)
	return out
}

// TransformInPlace transforms every point of the path by m.
func (p *Path) TransformInPlace(m Matrix) {
	for i := range p.Subpaths {
		sp := &p.Subpaths[i]
		sp.Start = m.TransformPoint(sp.Start)
		for j := range sp.Segments {
			seg := &sp.Segments[j]
			seg.Control1 = m.TransformPoint(seg.Control1)
			seg.Control2 = m.TransformPoint(seg.Control2)
			seg.Point = m.TransformPoint(seg.Point)
		}
	}
}

// SetTransformed stores src transformed by m into p, reusing p's buffers
// when they are large enough.
func (p *Path) SetTransformed(src Path, m Matrix) {
	p.resize(src)
	for i := range src.Subpaths {
		ss, dst := &src.Subpaths[i], &p.Subpaths[i]
		dst.Start = m.TransformPoint(ss.Start)
		dst.Closed = ss.Closed
		for j, seg := range ss.Segments {
			dst.Segments[j] = Segment{
				Control1: m.TransformPoint(seg.Control1),
				Control2: m.TransformPoint(seg.Control2),
				Point:    m.TransformPoint(seg.Point),
			}
		}
	}
}

// LerpInto stores the point-wise interpolation of a and b into p, reusing
// p's buffers when they are large enough. Handles are interpolated exactly
// like anchor points. It panics if a and b have different topologies.
func (p *Path) LerpInto(a, b Path, t float64) {
	if !a.SameTopology(b) {
		panic(fmt.Sprintf("keyframes: path topology mismatch %v vs %v", a.Topology(), b.Topology()))
	}
	p.resize(a)
	for i := range a.Subpaths {
		as, bs := &a.Subpaths[i], &b.Subpaths[i]
		dst := &p.Subpaths[i]
		dst.Start = as.Start.Lerp(bs.Start, t)
		dst.Closed = as.Closed
		for j := range as.Segments {
			sa, sb := &as.Segments[j], &bs.Segments[j]
			dst.Segments[j] = Segment{
				Control1: sa.Control1.Lerp(sb.Control1, t),
				Control2: sa.Control2.Lerp(sb.Control2, t),
				Point:    sa.Point.Lerp(sb.Point, t),
			}
		}
	}
}

// resize makes p's buffers match the topology of like.
func (p *Path) resize(like Path) {
	if cap(p.Subpaths) < len(like.Subpaths) {
		p.Subpaths = make([]Subpath, len(like.Subpaths))
	}
	p.Subpaths = p.Subpaths[:len(like.Subpaths)]
	for i := range like.Subpaths {
		n := len(like.Subpaths[i].Segments)
		if cap(p.Subpaths[i].Segments) < n {
			p.Subpaths[i].Segments = make([]Segment, n)
		}
		p.Subpaths[i].Segments = p.Subpaths[i].Segments[:n]
	}
}

// PathBuilder builds a Path with the familiar MoveTo/LineTo/CubicTo calls.
type PathBuilder struct {
	path    Path
	current Point
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	b.path.Subpaths = append(b.path.Subpaths, Subpath{Start: pt})
	b.current = pt
	return b
}

// LineTo adds a straight segment, stored as a cubic with handles on the
// endpoints.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	b.add(Segment{Control1: b.current, Control2: pt, Point: pt})
	return b
}

// CubicTo adds a cubic Bezier segment.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.add(Segment{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: Pt(x, y)})
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	if n := len(b.path.Subpaths); n > 0 {
		b.path.Subpaths[n-1].Closed = true
		b.current = b.path.Subpaths[n-1].Start
	}
	return b
}

// Rectangle adds a closed rectangle; the fourth edge is the closing one.
func (b *PathBuilder) Rectangle(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Path returns the built path.
func (b *PathBuilder) Path() Path {
	return b.path
}

func (b *PathBuilder) add(seg Segment) {
	if len(b.path.Subpaths) == 0 {
		b.path.Subpaths = append(b.path.Subpaths, Subpath{Start: b.current})
	}
	sp := &b.path.Subpaths[len(b.path.Subpaths)-1]
	sp.Segments = append(sp.Segments, seg)
	b.current = seg.Point
}
