package keyframes

import "testing"

func TestViewportScales(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 50})
	if v.XScale() != 1 || v.YScale() != 1 || v.StrokeScale() != 1 {
		t.Fatalf("default scales = %v, %v, %v, want 1", v.XScale(), v.YScale(), v.StrokeScale())
	}

	v.SetBounds(200, 200)
	if v.XScale() != 2 {
		t.Errorf("XScale() = %v, want 2", v.XScale())
	}
	if v.YScale() != 4 {
		t.Errorf("YScale() = %v, want 4", v.YScale())
	}
	if v.StrokeScale() != 2 {
		t.Errorf("StrokeScale() = %v, want 2", v.StrokeScale())
	}
	if w, h := v.Bounds(); w != 200 || h != 200 {
		t.Errorf("Bounds() = %v, %v", w, h)
	}

	v.SetDirectionalScale(1.5, 2, ScaleUp)
	if got := v.StrokeScale(); !almostEqual(got, 6) {
		t.Errorf("StrokeScale() with directional scale = %v, want 6", got)
	}
}

func TestViewportDirectionalAnchor(t *testing.T) {
	tests := []struct {
		name   string
		dir    ScaleDirection
		canvas Point // canvas point expected to stay put
		view   Point
	}{
		{"up keeps bottom", ScaleUp, Pt(50, 50), Pt(100, 200)},
		{"down keeps top", ScaleDown, Pt(50, 0), Pt(100, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(Size{Width: 100, Height: 50})
			v.SetBounds(200, 200)
			v.SetDirectionalScale(1, 2, tt.dir)
			if got := v.Matrix().TransformPoint(tt.canvas); !pointsClose(got, tt.view) {
				t.Errorf("edge center maps to %v, want %v", got, tt.view)
			}
		})
	}
}

func TestViewportInverse(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 50})
	v.SetBounds(320, 240)
	v.SetDirectionalScale(0.8, 1.25, ScaleDown)

	for _, p := range []Point{Pt(0, 0), Pt(100, 50), Pt(33, 12.5), Pt(-10, 70)} {
		back := v.Inverse().TransformPoint(v.Matrix().TransformPoint(p))
		if !pointsClose(back, p) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}
