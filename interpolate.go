package keyframes

// Interpolators blend a bracketing keyframe pair by eased progress t.
// They are exact at both ends: t=0 yields a and t=1 yields b.

// LerpFloat interpolates a scalar.
func LerpFloat(a, b, t float64) float64 {
	return lerp(a, b, t)
}

// LerpPoint interpolates both coordinates of a point.
func LerpPoint(a, b Point, t float64) Point {
	return a.Lerp(b, t)
}

// LerpColor interpolates every channel independently.
func LerpColor(a, b RGBA, t float64) RGBA {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return a.Lerp(b, t)
}

// LerpPath morphs a into b point by point. Both paths must share a topology.
func LerpPath(a, b Path, t float64) Path {
	var out Path
	out.LerpInto(a, b, t)
	return out
}
