package keyframes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are straight
// (not premultiplied) and stored in sRGB space.
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the fully transparent color. Features whose fill or stroke
// color is transparent skip that drawing pass.
var Transparent = RGBA{}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ARGB creates a color from a packed 0xAARRGGBB value, the layout design
// tools use when exporting colors as integers.
func ARGB(v uint32) RGBA {
	return RGBA{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: float64(v>>24&0xff) / 255,
	}
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func Hex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	alpha := 1.0
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("keyframes: invalid hex color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:6]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGBA{}, fmt.Errorf("keyframes: invalid hex color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustHex is like Hex but panics on malformed input.
// Intended for color literals in code.
func MustHex(s string) RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp interpolates each channel independently. No gamma correction is
// applied, matching how design tools preview color keyframes.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	blended := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return RGBA{
		R: blended.R,
		G: blended.G,
		B: blended.B,
		A: lerp(c.A, other.A, t),
	}
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// NRGBA converts to 8-bit straight alpha, clamping out-of-range channels.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// clamp255 restricts a value to [0, 255] range and rounds it.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x + 0.5
}
