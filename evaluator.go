package keyframes

// Substitute replaces a feature's vector content with a drawable supplied
// by the rendering adapter, such as a bitmap or a platform view.
type Substitute struct {
	// Drawable is opaque to the engine and interpreted by the adapter.
	Drawable any
	// Transform is applied to the drawable before the feature transform.
	// The zero value means identity.
	Transform Matrix
}

// Matrix returns Transform, mapping the zero value to the identity.
func (s Substitute) Matrix() Matrix {
	if s.Transform.IsZero() {
		return Identity()
	}
	return s.Transform
}

// FeatureState is the renderable state of one feature at the last
// evaluated frame. It is owned by its Evaluator and overwritten on every
// frame; copy what must outlive the next evaluation.
type FeatureState struct {
	Index int
	Name  string

	// HasPath is false for substituted features and features without a
	// path track; only Transform is meaningful then.
	HasPath bool
	// Path is in canvas space with Transform already applied.
	Path Path

	Transform   Matrix
	StrokeWidth float64 // scaled for the viewport
	FillColor   RGBA
	StrokeColor RGBA

	// Shader is the gradient fill, or nil.
	Shader *LinearGradient
	// Substitute is set when the feature is drawn by an external drawable.
	Substitute *Substitute
}

// Evaluator computes the renderable state of every feature of an animation
// at a query frame.
//
// An Evaluator owns all per-frame state (path buffers, matrices, gradient
// tables) and is not safe for concurrent use. Independent evaluators over
// the same Animation share nothing mutable and may run on separate
// goroutines.
type Evaluator struct {
	anim     *Animation
	composer *Composer
	viewport *Viewport

	// Parallel to anim.Features.
	states    []FeatureState
	gradients []*GradientCache
	subs      []*Substitute

	frame float64
}

// NewEvaluator creates an evaluator for a sealed animation and evaluates
// frame 0.
func NewEvaluator(a *Animation, opts ...Option) (*Evaluator, error) {
	composer, err := NewComposer(a)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	e := &Evaluator{
		anim:      a,
		composer:  composer,
		viewport:  NewViewport(a.Canvas),
		states:    make([]FeatureState, len(a.Features)),
		gradients: make([]*GradientCache, len(a.Features)),
		subs:      make([]*Substitute, len(a.Features)),
	}
	if o.width > 0 && o.height > 0 {
		e.viewport.SetBounds(o.width, o.height)
	}
	for i := range a.Features {
		f := &a.Features[i]
		e.states[i] = FeatureState{Index: i, Name: f.Name, Transform: Identity()}
		if f.Gradient != nil {
			e.gradients[i] = NewGradientCache(a, f.Gradient, o.gradientPrecision)
		}
		if s, ok := o.substitutes[f.Name]; ok && s.Drawable != nil {
			e.subs[i] = &s
		}
	}
	e.SetFrameProgress(0)
	return e, nil
}

// Animation returns the model being evaluated.
func (e *Evaluator) Animation() *Animation {
	return e.anim
}

// Viewport returns the viewport used to scale stroke widths. Changing it
// takes effect on the next evaluation.
func (e *Evaluator) Viewport() *Viewport {
	return e.viewport
}

// Frame returns the frame of the last SetFrameProgress call.
func (e *Evaluator) Frame() float64 {
	return e.frame
}

// SetFrameProgress evaluates the whole animation at frame: group transforms
// first, then every feature. frame is in frame units and is clamped to the
// animation range; looping is the caller's concern.
func (e *Evaluator) SetFrameProgress(frame float64) {
	e.frame = frame
	e.composer.Resolve(frame)
	for i := range e.states {
		e.Evaluate(i, frame)
	}
}

// GroupTransform returns a group's composed transform at the current frame.
func (e *Evaluator) GroupTransform(groupID int) Matrix {
	return e.composer.Transform(groupID)
}

// States returns the state of every feature, in model order.
func (e *Evaluator) States() []FeatureState {
	return e.states
}

// State returns the state of feature i.
func (e *Evaluator) State(i int) *FeatureState {
	return &e.states[i]
}

// Evaluate recomputes feature i at frame against the group transforms of
// the last SetFrameProgress call and returns its state.
func (e *Evaluator) Evaluate(i int, frame float64) *FeatureState {
	f := &e.anim.Features[i]
	st := &e.states[i]

	local := f.Transform.Matrix(frame, e.anim.Canvas)
	st.Transform = e.composer.Transform(f.GroupID).Multiply(local)
	st.Substitute = e.subs[i]
	st.FillColor = f.FillColor
	st.StrokeColor = f.StrokeColor

	if st.Substitute != nil || f.Path == nil {
		st.HasPath = false
		st.Shader = nil
		st.StrokeWidth = 0
		return st
	}

	left, right, p := f.Path.Locate(frame)
	st.Path.LerpInto(f.Path.Keyframe(left).Value, f.Path.Keyframe(right).Value, p)
	st.Path.TransformInPlace(st.Transform)
	st.HasPath = true

	width := f.BaseStrokeWidth
	if f.StrokeWidth != nil {
		width = f.StrokeWidth.ValueAt(frame, LerpFloat)
	}
	st.StrokeWidth = width * e.viewport.StrokeScale()

	st.Shader = nil
	if g := e.gradients[i]; g != nil {
		st.Shader = g.Lookup(frame)
	}
	return st
}
