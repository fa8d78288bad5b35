package keyframes

// ScaleDirection selects the edge a directional scale grows from.
type ScaleDirection int

const (
	// ScaleUp keeps the bottom edge fixed, so content grows upwards.
	ScaleUp ScaleDirection = iota
	// ScaleDown keeps the top edge fixed.
	ScaleDown
)

// Viewport maps canvas units onto the size the rendering adapter draws at.
//
// Besides the plain canvas-to-view scale, adapters may apply two extra
// uniform scales: one about the view center and one about the bottom or
// top edge. Stroke widths are multiplied by the same factors so that lines
// keep their authored proportions.
type Viewport struct {
	canvas Size
	width  float64
	height float64

	xScale, yScale  float64
	scaleFromCenter float64
	scaleFromEnd    float64
	direction       ScaleDirection

	matrix  Matrix
	inverse Matrix
}

// NewViewport creates a viewport drawing the canvas at its authored size.
func NewViewport(canvas Size) *Viewport {
	v := &Viewport{canvas: canvas, scaleFromCenter: 1, scaleFromEnd: 1}
	v.SetBounds(canvas.Width, canvas.Height)
	return v
}

// SetBounds sets the size the adapter draws at.
func (v *Viewport) SetBounds(width, height float64) {
	v.width, v.height = width, height
	v.xScale = width / v.canvas.Width
	v.yScale = height / v.canvas.Height
	v.update()
}

// SetDirectionalScale sets the extra center and edge scales.
func (v *Viewport) SetDirectionalScale(fromCenter, fromEnd float64, dir ScaleDirection) {
	v.scaleFromCenter, v.scaleFromEnd, v.direction = fromCenter, fromEnd, dir
	v.update()
}

// Bounds returns the size set with SetBounds.
func (v *Viewport) Bounds() (width, height float64) {
	return v.width, v.height
}

// XScale returns the horizontal canvas-to-view ratio.
func (v *Viewport) XScale() float64 { return v.xScale }

// YScale returns the vertical canvas-to-view ratio.
func (v *Viewport) YScale() float64 { return v.yScale }

// StrokeScale returns the factor applied to authored stroke widths.
func (v *Viewport) StrokeScale() float64 {
	return v.xScale * v.scaleFromCenter * v.scaleFromEnd
}

// Matrix maps canvas coordinates to view coordinates.
func (v *Viewport) Matrix() Matrix { return v.matrix }

// Inverse maps view coordinates back to canvas coordinates.
func (v *Viewport) Inverse() Matrix { return v.inverse }

func (v *Viewport) update() {
	m := Scale(v.xScale, v.yScale)
	if v.scaleFromCenter != 1 || v.scaleFromEnd != 1 {
		endY := v.height
		if v.direction == ScaleDown {
			endY = 0
		}
		m = ScaleAbout(v.scaleFromCenter, v.scaleFromCenter, v.width/2, v.height/2).Multiply(m)
		m = ScaleAbout(v.scaleFromEnd, v.scaleFromEnd, v.width/2, endY).Multiply(m)
	}
	v.matrix = m
	v.inverse = m.Invert()
}
