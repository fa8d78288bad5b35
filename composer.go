package keyframes

// Composer resolves the transform of every animation group for one frame.
//
// Groups form a forest. Each group's local transform is evaluated on its
// own and then composed with its parent's already composed transform, so
// the whole forest costs one pass per frame no matter how many features
// share a group.
type Composer struct {
	anim     *Animation
	local    []Matrix
	composed []Matrix
	warned   map[int]bool
}

// NewComposer creates a composer for a sealed animation.
func NewComposer(a *Animation) (*Composer, error) {
	if a == nil || !a.sealed {
		return nil, ErrNotSealed
	}
	c := &Composer{
		anim:     a,
		local:    make([]Matrix, len(a.Groups)),
		composed: make([]Matrix, len(a.Groups)),
		warned:   make(map[int]bool),
	}
	for i := range c.composed {
		c.composed[i] = Identity()
	}
	return c, nil
}

// Resolve recomputes every group transform at frame. Parents are processed
// before children; the parent's transform is applied after the child's
// local one:
//
//	composed(child) = composed(parent) · local(child)
func (c *Composer) Resolve(frame float64) {
	a := c.anim
	for i := range a.Groups {
		c.local[i] = a.Groups[i].Transform.Matrix(frame, a.Canvas)
	}
	for _, i := range a.groupOrder {
		if p := a.parentIndex[i]; p >= 0 {
			c.composed[i] = c.composed[p].Multiply(c.local[i])
		} else {
			c.composed[i] = c.local[i]
		}
	}
}

// Transform returns the composed transform of a group as of the last
// Resolve. NoGroup yields the identity. Unknown ids are treated as roots
// too; sealed models never contain them.
func (c *Composer) Transform(groupID int) Matrix {
	if groupID == NoGroup {
		return Identity()
	}
	i, ok := c.anim.groupIndex[groupID]
	if !ok {
		if !c.warned[groupID] {
			c.warned[groupID] = true
			Logger().Warn("unknown animation group, using identity", "group", groupID)
		}
		return Identity()
	}
	return c.composed[i]
}

// Transforms returns the composed transform of every group keyed by id.
func (c *Composer) Transforms() map[int]Matrix {
	out := make(map[int]Matrix, len(c.anim.Groups))
	for i, g := range c.anim.Groups {
		out[g.ID] = c.composed[i]
	}
	return out
}
