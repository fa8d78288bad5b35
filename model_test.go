package keyframes

import (
	"errors"
	"testing"
)

// validAnimation returns a minimal model that NewAnimation accepts.
func validAnimation() Animation {
	return Animation{
		Canvas:     Size{Width: 100, Height: 100},
		FrameRate:  30,
		FrameCount: 10,
		Groups: []Group{
			{ID: 1},
			{ID: 2, ParentID: 1},
		},
		Features: []Feature{
			{Name: "box", GroupID: 2, Path: Constant(square(0, 0, 10)), FillColor: RGB(1, 0, 0)},
		},
	}
}

func TestNewAnimationValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Animation)
		wantErr error
	}{
		{"valid", func(*Animation) {}, nil},
		{"zero width", func(a *Animation) { a.Canvas.Width = 0 }, ErrInvalidCanvas},
		{"negative height", func(a *Animation) { a.Canvas.Height = -1 }, ErrInvalidCanvas},
		{"zero frame count", func(a *Animation) { a.FrameCount = 0 }, ErrInvalidFrameCount},
		{"zero frame rate", func(a *Animation) { a.FrameRate = 0 }, ErrInvalidFrameRate},
		{"group id zero", func(a *Animation) { a.Groups[0].ID = NoGroup }, ErrInvalidGroupID},
		{"duplicate group", func(a *Animation) { a.Groups[1].ID = 1 }, ErrDuplicateGroup},
		{"unknown parent", func(a *Animation) { a.Groups[1].ParentID = 7 }, ErrUnknownParent},
		{"cycle", func(a *Animation) { a.Groups[0].ParentID = 2 }, ErrGroupCycle},
		{"self parent", func(a *Animation) { a.Groups[0].ParentID = 1 }, ErrGroupCycle},
		{"unknown feature group", func(a *Animation) { a.Features[0].GroupID = 9 }, ErrUnknownGroup},
		{"path topology", func(a *Animation) {
			a.Features[0].Path = MustTrack([]Keyframe[Path]{
				{0, square(0, 0, 1)},
				{5, NewPathBuilder().MoveTo(0, 0).LineTo(1, 1).Path()},
			}, nil)
		}, ErrPathTopology},
		{"unsupported gradient", func(a *Animation) {
			a.Features[0].Gradient = &GradientEffect{Type: "radial", Start: Constant(RGB(1, 0, 0)), End: Constant(RGB(0, 0, 1))}
		}, ErrUnsupportedGradient},
		{"missing gradient track", func(a *Animation) {
			a.Features[0].Gradient = &GradientEffect{Type: GradientLinear, Start: Constant(RGB(1, 0, 0))}
		}, ErrMissingGradientTrack},
		{"empty stroke track", func(a *Animation) { a.Features[0].StrokeWidth = &Track[float64]{} }, ErrEmptyTrack},
		{"empty group transform track", func(a *Animation) {
			a.Groups[0].Transform.Rotation = &Track[float64]{}
		}, ErrEmptyTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := validAnimation()
			tt.mutate(&desc)
			a, err := NewAnimation(desc)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewAnimation() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && a != nil {
				t.Error("NewAnimation returned a model together with an error")
			}
		})
	}
}

func TestNewAnimationNormalizesTracks(t *testing.T) {
	desc := validAnimation()
	desc.Features[0].StrokeWidth = MustTrack([]Keyframe[float64]{{2, 1}, {20, 5}}, nil)
	desc.Groups[0].Transform.Position = Constant(Pt(0.5, 0.5))

	a, err := NewAnimation(desc)
	if err != nil {
		t.Fatal(err)
	}
	for name, tr := range map[string]interface{ Len() int }{
		"path":     a.Features[0].Path,
		"stroke":   a.Features[0].StrokeWidth,
		"position": a.Groups[0].Transform.Position,
	} {
		if tr.Len() < 2 {
			t.Errorf("%s track has %d keyframes after normalization, want >= 2", name, tr.Len())
		}
	}
	sw := a.Features[0].StrokeWidth
	if f := sw.Keyframe(sw.Len() - 1).Frame; f != desc.FrameCount {
		t.Errorf("stroke track ends at %d, want %d", f, desc.FrameCount)
	}
	if desc.Features[0].StrokeWidth.Keyframe(0).Frame != 2 {
		t.Error("NewAnimation modified the caller's track")
	}
}

func TestNewAnimationOwnsPaths(t *testing.T) {
	p0, p1 := square(0, 0, 10), square(5, 5, 10)
	desc := validAnimation()
	desc.Features[0].Path = MustTrack([]Keyframe[Path]{{0, p0}, {10, p1}}, nil)

	a, err := NewAnimation(desc)
	if err != nil {
		t.Fatal(err)
	}
	// Editing the caller's paths after sealing must not reach the model.
	p0.Subpaths[0].Start = Pt(99, 99)
	p0.Subpaths[0].Segments = append(p0.Subpaths[0].Segments, Segment{})
	p1.Subpaths[0].Segments[0].Point = Pt(-1, -1)

	ev, err := NewEvaluator(a)
	if err != nil {
		t.Fatal(err)
	}
	ev.SetFrameProgress(5)
	st := ev.State(0)
	if got := st.Path.Topology(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("topology = %v, want [3]", got)
	}
	if got := st.Path.Subpaths[0].Start; !pointsClose(got, Pt(2.5, 2.5)) {
		t.Errorf("start at frame 5 = %v, want (2.5, 2.5)", got)
	}
	if got := st.Path.Subpaths[0].Segments[0].Point; !pointsClose(got, Pt(12.5, 2.5)) {
		t.Errorf("first segment end at frame 5 = %v, want (12.5, 2.5)", got)
	}
}

func TestAnimationHelpers(t *testing.T) {
	a, err := NewAnimation(validAnimation())
	if err != nil {
		t.Fatal(err)
	}
	if got := a.Duration(); !almostEqual(got, 10.0/30) {
		t.Errorf("Duration() = %v, want %v", got, 10.0/30)
	}
	if i, ok := a.FeatureIndex("box"); !ok || i != 0 {
		t.Errorf("FeatureIndex(box) = %d, %v", i, ok)
	}
	if _, ok := a.FeatureIndex("missing"); ok {
		t.Error("FeatureIndex(missing) reported ok")
	}
}

func TestUnsealedAnimationRejected(t *testing.T) {
	desc := validAnimation()
	if _, err := NewEvaluator(&desc); !errors.Is(err, ErrNotSealed) {
		t.Errorf("NewEvaluator(unsealed) error = %v, want ErrNotSealed", err)
	}
	if _, err := NewComposer(nil); !errors.Is(err, ErrNotSealed) {
		t.Errorf("NewComposer(nil) error = %v, want ErrNotSealed", err)
	}
}
