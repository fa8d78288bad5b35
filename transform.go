package keyframes

import "math"

// TransformTracks animates the components of a 2D affine transform.
// Each component is interpolated on its own; a nil track holds the default
// value (position and anchor at the origin, unit scale, no rotation).
//
// Position and Anchor are fractions of the canvas size so the same model
// renders identically at any resolution. Rotation is in degrees, clockwise
// on a y-down canvas.
type TransformTracks struct {
	Position *Track[Point]
	Anchor   *Track[Point]
	Scale    *Track[Point]
	Rotation *Track[float64]
}

// TransformComponents is the value of every transform component at one frame.
type TransformComponents struct {
	Position Point
	Anchor   Point
	Scale    Point
	Rotation float64
}

// DefaultComponents returns the components of the identity transform.
func DefaultComponents() TransformComponents {
	return TransformComponents{Scale: Pt(1, 1)}
}

// IsEmpty reports whether no component is animated.
func (tt TransformTracks) IsEmpty() bool {
	return tt.Position == nil && tt.Anchor == nil && tt.Scale == nil && tt.Rotation == nil
}

// Components evaluates every component track at frame.
func (tt TransformTracks) Components(frame float64) TransformComponents {
	c := DefaultComponents()
	if tt.Position != nil {
		c.Position = tt.Position.ValueAt(frame, LerpPoint)
	}
	if tt.Anchor != nil {
		c.Anchor = tt.Anchor.ValueAt(frame, LerpPoint)
	}
	if tt.Scale != nil {
		c.Scale = tt.Scale.ValueAt(frame, LerpPoint)
	}
	if tt.Rotation != nil {
		c.Rotation = tt.Rotation.ValueAt(frame, LerpFloat)
	}
	return c
}

// Matrix evaluates the tracks at frame and composes them for a canvas.
func (tt TransformTracks) Matrix(frame float64, canvas Size) Matrix {
	if tt.IsEmpty() {
		return Identity()
	}
	return tt.Components(frame).Matrix(canvas)
}

// Matrix composes the components as
//
//	Translate(position) · Rotate(rotation) · Scale(scale) · Translate(-anchor)
//
// so a point is first moved relative to the anchor, then scaled, rotated
// and finally placed at the position.
func (c TransformComponents) Matrix(canvas Size) Matrix {
	pos := c.Position.MulPoint(canvas.Point())
	anchor := c.Anchor.MulPoint(canvas.Point())
	return Translate(pos.X, pos.Y).
		Multiply(Rotate(c.Rotation * math.Pi / 180)).
		Multiply(Scale(c.Scale.X, c.Scale.Y)).
		Multiply(Translate(-anchor.X, -anchor.Y))
}

func (tt TransformTracks) normalized(frameCount int) TransformTracks {
	return TransformTracks{
		Position: normalizeTrack(tt.Position, frameCount),
		Anchor:   normalizeTrack(tt.Anchor, frameCount),
		Scale:    normalizeTrack(tt.Scale, frameCount),
		Rotation: normalizeTrack(tt.Rotation, frameCount),
	}
}

func (tt TransformTracks) validate() error {
	if err := checkTrack(tt.Position); err != nil {
		return err
	}
	if err := checkTrack(tt.Anchor); err != nil {
		return err
	}
	if err := checkTrack(tt.Scale); err != nil {
		return err
	}
	return checkTrack(tt.Rotation)
}

func normalizeTrack[T any](t *Track[T], frameCount int) *Track[T] {
	if t == nil {
		return nil
	}
	return t.normalized(frameCount)
}

func checkTrack[T any](t *Track[T]) error {
	if t != nil && t.Len() == 0 {
		return ErrEmptyTrack
	}
	return nil
}
