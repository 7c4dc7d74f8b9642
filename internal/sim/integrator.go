package sim

import "github.com/san-kum/slidesim/internal/track"

// Step advances the bead by one semi-implicit Euler sub-step.
//
// Gravity is projected onto the local tangent, linear drag opposes the
// current velocity, and the updated velocity is projected back onto
// the horizontal axis for the position update. The velocity updates
// before the position for stability.
//
// dt must be a single sub-step, not a whole frame: the tangential
// acceleration is only valid locally, so the caller divides the
// clamped frame time into SubSteps pieces.
func Step(s MassState, p Params, tr track.Track, dt float64) MassState {
	sin, cos := tr.Angle(s.X)

	a := -p.GravityScaled() * sin
	if p.Friction > 0 {
		a -= p.Friction * s.V
	}

	s.V += a * dt
	s.X += s.V * cos * dt
	s.Y = tr.Height(s.X)
	return s
}
