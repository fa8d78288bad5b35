package keyframes

import (
	"fmt"
	"math"
	"sort"
)

// Keyframe is an authored (frame, value) sample.
type Keyframe[T any] struct {
	Frame int
	Value T
}

// Track is an ordered list of keyframes with one easing per segment
// between consecutive keyframes.
//
// A Track is immutable once created. NewAnimation replaces every track of
// the model with a normalized copy whose first keyframe sits at frame 0 and
// whose last keyframe sits at the animation's frame count.
type Track[T any] struct {
	keys    []Keyframe[T]
	easings []Easing
}

// NewTrack creates a track. Frames must be strictly increasing. easings
// holds one entry per segment (len(keys)-1); a nil slice or nil entries
// mean Linear.
func NewTrack[T any](keys []Keyframe[T], easings []Easing) (*Track[T], error) {
	if len(keys) == 0 {
		return nil, ErrEmptyTrack
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Frame <= keys[i-1].Frame {
			return nil, fmt.Errorf("%w: frame %d follows %d", ErrTrackOrder, keys[i].Frame, keys[i-1].Frame)
		}
	}
	if easings != nil && len(easings) != len(keys)-1 {
		return nil, fmt.Errorf("%w: %d keyframes, %d easings", ErrEasingCount, len(keys), len(easings))
	}

	t := &Track[T]{
		keys:    append([]Keyframe[T](nil), keys...),
		easings: make([]Easing, len(keys)-1),
	}
	for i := range t.easings {
		t.easings[i] = Linear
		if easings != nil && easings[i] != nil {
			t.easings[i] = easings[i]
		}
	}
	return t, nil
}

// MustTrack is like NewTrack but panics on error.
func MustTrack[T any](keys []Keyframe[T], easings []Easing) *Track[T] {
	t, err := NewTrack(keys, easings)
	if err != nil {
		panic(err)
	}
	return t
}

// Constant returns a single-keyframe track holding v.
func Constant[T any](v T) *Track[T] {
	return &Track[T]{keys: []Keyframe[T]{{Frame: 0, Value: v}}}
}

// Len returns the number of keyframes.
func (t *Track[T]) Len() int {
	return len(t.keys)
}

// Keyframe returns the i-th keyframe.
func (t *Track[T]) Keyframe(i int) Keyframe[T] {
	return t.keys[i]
}

// Easing returns the easing of the segment between keyframes i and i+1.
func (t *Track[T]) Easing(i int) Easing {
	return t.easings[i]
}

// Locate finds the keyframes bracketing frame and the eased progress
// between them.
//
// Frames at or before the first keyframe return (0, 0, 0); frames at or
// after the last return (n-1, n-1, 1). There is no extrapolation.
func (t *Track[T]) Locate(frame float64) (left, right int, progress float64) {
	n := len(t.keys)
	if math.IsNaN(frame) || frame <= float64(t.keys[0].Frame) {
		return 0, 0, 0
	}
	if frame >= float64(t.keys[n-1].Frame) {
		return n - 1, n - 1, 1
	}

	// Largest i with keys[i].Frame <= frame; 0 <= i < n-1 here.
	i := sort.Search(n, func(k int) bool { return float64(t.keys[k].Frame) > frame }) - 1
	start, end := t.keys[i].Frame, t.keys[i+1].Frame
	if end <= start {
		return i, i + 1, 1
	}
	p := (frame - float64(start)) / float64(end-start)
	return i, i + 1, t.easings[i].Ease(p)
}

// ValueAt evaluates the track at frame using lerp to blend the bracketing
// values.
func (t *Track[T]) ValueAt(frame float64, lerp func(a, b T, t float64) T) T {
	left, right, p := t.Locate(frame)
	if left == right {
		return t.keys[left].Value
	}
	return lerp(t.keys[left].Value, t.keys[right].Value, p)
}

// normalized returns a copy spanning exactly [0, frameCount]:
//
//  1. every frame is clamped into [0, frameCount];
//  2. keyframes that collapse onto the same boundary are reduced to the one
//     nearest the interior (the last one at 0, the first one at
//     frameCount), dropping the easings of the removed segments;
//  3. a track starting after 0 or ending before frameCount is extended by
//     repeating its boundary value with a Linear segment.
//
// The policy treats both ends the same way.
func (t *Track[T]) normalized(frameCount int) *Track[T] {
	keys := make([]Keyframe[T], 0, len(t.keys)+2)
	easings := make([]Easing, 0, len(t.keys)+1)

	for i, k := range t.keys {
		k.Frame = min(max(k.Frame, 0), frameCount)
		if n := len(keys); n > 0 && keys[n-1].Frame == k.Frame {
			if k.Frame == 0 {
				keys[n-1] = k
			}
			continue
		}
		if len(keys) > 0 {
			easings = append(easings, t.easingAt(i-1))
		}
		keys = append(keys, k)
	}

	if keys[0].Frame > 0 {
		keys = append([]Keyframe[T]{{Frame: 0, Value: keys[0].Value}}, keys...)
		easings = append([]Easing{Linear}, easings...)
	}
	if last := keys[len(keys)-1]; last.Frame < frameCount {
		keys = append(keys, Keyframe[T]{Frame: frameCount, Value: last.Value})
		easings = append(easings, Linear)
	}
	return &Track[T]{keys: keys, easings: easings}
}

func (t *Track[T]) easingAt(i int) Easing {
	if i < len(t.easings) && t.easings[i] != nil {
		return t.easings[i]
	}
	return Linear
}

