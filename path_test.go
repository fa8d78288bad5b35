package keyframes

import (
	"reflect"
	"testing"
)

func square(x, y, size float64) Path {
	return NewPathBuilder().Rectangle(x, y, size, size).Path()
}

func TestPathBuilderLineTo(t *testing.T) {
	p := NewPathBuilder().MoveTo(1, 2).LineTo(5, 2).Path()
	if len(p.Subpaths) != 1 || len(p.Subpaths[0].Segments) != 1 {
		t.Fatalf("topology = %v, want [1]", p.Topology())
	}
	seg := p.Subpaths[0].Segments[0]
	want := Segment{Control1: Pt(1, 2), Control2: Pt(5, 2), Point: Pt(5, 2)}
	if seg != want {
		t.Errorf("LineTo segment = %+v, want %+v", seg, want)
	}
}

func TestPathTopology(t *testing.T) {
	a := NewPathBuilder().Rectangle(0, 0, 1, 1).MoveTo(5, 5).LineTo(6, 6).Path()
	b := NewPathBuilder().Rectangle(2, 2, 3, 3).MoveTo(0, 0).CubicTo(1, 1, 2, 2, 3, 3).Path()
	c := square(0, 0, 1)

	if got := a.Topology(); !reflect.DeepEqual(got, []int{3, 1}) {
		t.Errorf("Topology() = %v, want [3 1]", got)
	}
	if !a.SameTopology(b) {
		t.Error("a and b should share topology")
	}
	if a.SameTopology(c) {
		t.Error("a and c should differ in topology")
	}
	if got := a.PointCount(); got != 1+3*3+1+3 {
		t.Errorf("PointCount() = %d, want 14", got)
	}
	if !(Path{}).IsEmpty() || a.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestPathLerpBoundaries(t *testing.T) {
	a := NewPathBuilder().MoveTo(0.1, 0.2).CubicTo(0.3, 0.7, 1.9, 2.3, 3.3, 0.1).Close().Path()
	b := NewPathBuilder().MoveTo(10.7, -3.1).CubicTo(5.5, 6.6, 7.7, 8.8, 9.9, 1e-3).Close().Path()

	if got := LerpPath(a, b, 0); !reflect.DeepEqual(got, a) {
		t.Errorf("LerpPath(t=0) = %+v, want %+v", got, a)
	}
	if got := LerpPath(a, b, 1); !reflect.DeepEqual(got, b) {
		t.Errorf("LerpPath(t=1) = %+v, want %+v", got, b)
	}

	mid := LerpPath(square(0, 0, 10), square(10, 10, 20), 0.5)
	if want := square(5, 5, 15); !reflect.DeepEqual(mid, want) {
		t.Errorf("LerpPath(t=0.5) = %+v, want %+v", mid, want)
	}
}

func TestPathLerpIntoReusesBuffers(t *testing.T) {
	a, b := square(0, 0, 1), square(1, 1, 1)
	var dst Path
	dst.LerpInto(a, b, 0.25)
	first := &dst.Subpaths[0].Segments[0]
	dst.LerpInto(a, b, 0.75)
	if &dst.Subpaths[0].Segments[0] != first {
		t.Error("LerpInto reallocated segments for an unchanged topology")
	}
	if got := dst.Subpaths[0].Start; !pointsClose(got, Pt(0.75, 0.75)) {
		t.Errorf("Start = %v, want (0.75, 0.75)", got)
	}
}

func TestPathLerpTopologyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LerpPath with mismatched topology did not panic")
		}
	}()
	LerpPath(square(0, 0, 1), NewPathBuilder().MoveTo(0, 0).LineTo(1, 1).Path(), 0.5)
}

func TestPathTransform(t *testing.T) {
	p := square(0, 0, 1)
	m := Translate(10, 0).Multiply(Scale(2, 2))

	got := p.Transform(m)
	if want := square(10, 0, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("Transform() = %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(p, square(0, 0, 1)) {
		t.Error("Transform modified the receiver")
	}

	var dst Path
	dst.SetTransformed(p, m)
	if !reflect.DeepEqual(dst, got) {
		t.Errorf("SetTransformed() = %+v, want %+v", dst, got)
	}
}

func TestPathClone(t *testing.T) {
	p := square(0, 0, 1)
	c := p.Clone()
	c.Subpaths[0].Segments[0].Point = Pt(99, 99)
	if p.Subpaths[0].Segments[0].Point == Pt(99, 99) {
		t.Error("Clone shares segment storage with the original")
	}
}
