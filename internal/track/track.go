// Package track defines the fixed parabolic curve the bead slides on.
//
// The curve is y = k*x^2 for a session-constant curvature k. All
// functions are pure; the geometry at any x is fully determined by
// the curvature.
package track

import "math"

type Track struct {
	Curvature float64
}

func New(curvature float64) Track {
	return Track{Curvature: curvature}
}

func (t Track) Height(x float64) float64 {
	return t.Curvature * x * x
}

// Slope returns dy/dx at x.
func (t Track) Slope(x float64) float64 {
	return 2 * t.Curvature * x
}

// Angle returns sin and cos of the tangent angle at x, derived from
// the slope. cos is always positive, sin carries the slope's sign.
func (t Track) Angle(x float64) (sin, cos float64) {
	m := t.Slope(x)
	inv := 1 / math.Sqrt(1+m*m)
	return m * inv, inv
}
