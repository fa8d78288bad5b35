package keyframes

import "fmt"

// NoGroup is the group id meaning "no group": a feature without a group and
// a group without a parent use the identity as their parent transform.
const NoGroup = 0

// Size is a width and height in authoring units.
type Size struct {
	Width, Height float64
}

// Point returns the size as a vector.
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

// GradientType selects the gradient geometry.
type GradientType string

// GradientLinear is a two-stop gradient running from the top to the bottom
// of the canvas. It is the only supported type.
const GradientLinear GradientType = "linear"

// GradientEffect animates the two stop colors of a gradient fill.
type GradientEffect struct {
	Type  GradientType
	Start *Track[RGBA]
	End   *Track[RGBA]
}

// Group is a node of the transform hierarchy. Features attached to a group
// inherit the group's transform composed with all its ancestors.
type Group struct {
	ID        int // > 0, unique
	ParentID  int // NoGroup for a root group
	Transform TransformTracks
}

// Feature is one animated shape.
type Feature struct {
	// Name identifies the feature for substitution (see WithSubstitutes).
	Name    string
	GroupID int

	// Path is nil when the feature is drawn entirely by a substitute.
	// All keyframes must share one topology.
	Path *Track[Path]

	// StrokeWidth overrides BaseStrokeWidth when set.
	StrokeWidth     *Track[float64]
	BaseStrokeWidth float64

	FillColor   RGBA
	StrokeColor RGBA

	Transform TransformTracks
	Gradient  *GradientEffect
}

// Animation is the immutable description of an animated vector image.
//
// Build the struct with plain values and seal it with NewAnimation. A
// sealed Animation must not be modified; it may be shared by any number of
// evaluators on any number of goroutines.
type Animation struct {
	Canvas     Size
	FrameRate  int
	FrameCount int
	Features   []Feature
	Groups     []Group

	sealed      bool
	groupIndex  map[int]int
	parentIndex []int // parallel to Groups, -1 for roots
	groupOrder  []int // indices into Groups, parents first
}

// NewAnimation validates desc, normalizes all of its tracks to span
// [0, FrameCount] and precomputes the group hierarchy. Any validation
// failure rejects the whole model.
func NewAnimation(desc Animation) (*Animation, error) {
	a := &Animation{
		Canvas:     desc.Canvas,
		FrameRate:  desc.FrameRate,
		FrameCount: desc.FrameCount,
		Features:   make([]Feature, len(desc.Features)),
		Groups:     make([]Group, len(desc.Groups)),
	}
	if a.Canvas.Width <= 0 || a.Canvas.Height <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidCanvas, a.Canvas.Width, a.Canvas.Height)
	}
	if a.FrameCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, a.FrameCount)
	}
	if a.FrameRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameRate, a.FrameRate)
	}

	for i, g := range desc.Groups {
		if err := g.Transform.validate(); err != nil {
			return nil, fmt.Errorf("keyframes: group %d: %w", g.ID, err)
		}
		g.Transform = g.Transform.normalized(a.FrameCount)
		a.Groups[i] = g
	}
	if err := a.indexGroups(); err != nil {
		return nil, err
	}

	for i, f := range desc.Features {
		if err := a.checkFeature(&f); err != nil {
			return nil, fmt.Errorf("keyframes: feature %q: %w", f.Name, err)
		}
		f.Path = clonePaths(normalizeTrack(f.Path, a.FrameCount))
		f.StrokeWidth = normalizeTrack(f.StrokeWidth, a.FrameCount)
		f.Transform = f.Transform.normalized(a.FrameCount)
		if f.Gradient != nil {
			f.Gradient = &GradientEffect{
				Type:  f.Gradient.Type,
				Start: f.Gradient.Start.normalized(a.FrameCount),
				End:   f.Gradient.End.normalized(a.FrameCount),
			}
		}
		a.Features[i] = f
	}

	a.sealed = true
	Logger().Debug("animation sealed",
		"features", len(a.Features),
		"groups", len(a.Groups),
		"frames", a.FrameCount,
		"fps", a.FrameRate)
	return a, nil
}

// Duration returns the play time of one loop in seconds.
func (a *Animation) Duration() float64 {
	return float64(a.FrameCount) / float64(a.FrameRate)
}

// FeatureIndex returns the index of the first feature with the given name.
func (a *Animation) FeatureIndex(name string) (int, bool) {
	for i := range a.Features {
		if a.Features[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

func (a *Animation) checkFeature(f *Feature) error {
	if f.GroupID != NoGroup {
		if _, ok := a.groupIndex[f.GroupID]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownGroup, f.GroupID)
		}
	}
	if err := checkTrack(f.Path); err != nil {
		return err
	}
	if err := checkTrack(f.StrokeWidth); err != nil {
		return err
	}
	if err := f.Transform.validate(); err != nil {
		return err
	}
	if f.Path != nil {
		first := f.Path.Keyframe(0).Value
		for i := 1; i < f.Path.Len(); i++ {
			if p := f.Path.Keyframe(i).Value; !first.SameTopology(p) {
				return fmt.Errorf("%w: keyframe %d has %v, keyframe 0 has %v",
					ErrPathTopology, i, p.Topology(), first.Topology())
			}
		}
	}
	if g := f.Gradient; g != nil {
		if g.Type != GradientLinear {
			return fmt.Errorf("%w: %q", ErrUnsupportedGradient, g.Type)
		}
		if g.Start == nil || g.End == nil || g.Start.Len() == 0 || g.End.Len() == 0 {
			return ErrMissingGradientTrack
		}
	}
	return nil
}

// clonePaths gives a freshly normalized path track its own path storage,
// so later edits to the caller's paths cannot break the topology check.
func clonePaths(t *Track[Path]) *Track[Path] {
	if t == nil {
		return nil
	}
	for i := range t.keys {
		t.keys[i].Value = t.keys[i].Value.Clone()
	}
	return t
}

// indexGroups checks ids and parent links and orders groups parents first.
func (a *Animation) indexGroups() error {
	a.groupIndex = make(map[int]int, len(a.Groups))
	for i, g := range a.Groups {
		if g.ID <= NoGroup {
			return fmt.Errorf("%w: %d", ErrInvalidGroupID, g.ID)
		}
		if _, dup := a.groupIndex[g.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateGroup, g.ID)
		}
		a.groupIndex[g.ID] = i
	}

	a.parentIndex = make([]int, len(a.Groups))
	for i, g := range a.Groups {
		a.parentIndex[i] = -1
		if g.ParentID == NoGroup {
			continue
		}
		p, ok := a.groupIndex[g.ParentID]
		if !ok {
			return fmt.Errorf("%w: group %d names parent %d", ErrUnknownParent, g.ID, g.ParentID)
		}
		a.parentIndex[i] = p
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(a.Groups))
	a.groupOrder = make([]int, 0, len(a.Groups))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: through group %d", ErrGroupCycle, a.Groups[i].ID)
		}
		state[i] = visiting
		if p := a.parentIndex[i]; p >= 0 {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[i] = done
		a.groupOrder = append(a.groupOrder, i)
		return nil
	}
	for i := range a.Groups {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}
