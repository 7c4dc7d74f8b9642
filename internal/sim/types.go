package sim

const (
	// ScaleG converts the user-facing gravity value (m/s^2) into
	// track units per second squared. Track units are display pixels,
	// so the factor sets the animation pace.
	ScaleG = 15.0

	// EnergyScale converts raw track-unit energies into display units.
	EnergyScale = 0.01

	// MinEnergyDenom is the floor denominator for bar normalization,
	// so a near-empty ledger still divides cleanly.
	MinEnergyDenom = 10.0

	// MaxFrameDt caps the wall-clock time fed into one frame. Frame
	// hitches (a backgrounded terminal, a paused debugger) otherwise
	// produce arbitrarily large steps.
	MaxFrameDt = 0.1

	// SubSteps is the fixed number of integration sub-steps per frame.
	SubSteps = 10

	// GrabRadius is the screen-space hit radius for grabbing the bead.
	GrabRadius = 40.0
)

const (
	DefaultCurvature = 0.005
	DefaultGravity   = 9.8
	DefaultFriction  = 0.3
	DefaultMass      = 1.0
	DefaultStartX    = -100.0
)

// MassState is the bead's state. Y is always Height(X); the integrator
// recomputes it after every position update.
type MassState struct {
	X    float64
	Y    float64
	V    float64 // signed speed tangent to the track, positive toward +x
	Mass float64
}

// Params holds the user-adjustable physics parameters. Friction is the
// linear drag coefficient; zero means friction is disabled.
type Params struct {
	Gravity  float64
	Friction float64
}

func (p Params) GravityScaled() float64 {
	return p.Gravity * ScaleG
}

// EnergyReport is a per-frame snapshot of the energy partition.
type EnergyReport struct {
	Potential float64
	Kinetic   float64
	Thermal   float64
	Total     float64
}

// Fractions returns each component's share of the total for bar
// rendering, using the floor denominator when the total is small.
func (r EnergyReport) Fractions() (potential, kinetic, thermal float64) {
	denom := r.Total
	if denom < MinEnergyDenom {
		denom = MinEnergyDenom
	}
	return r.Potential / denom, r.Kinetic / denom, r.Thermal / denom
}
