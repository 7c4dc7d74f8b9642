package sim

import "github.com/san-kum/slidesim/internal/track"

// Phase is the controller's run state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseDragging:
		return "dragging"
	}
	return "unknown"
}

// Controller owns the bead state, physics parameters, and energy
// ledger, and serializes every mutation: frame advancement, pointer
// gestures, and parameter changes all go through its methods on one
// goroutine. It has no notion of real time; the frame driver hands it
// elapsed seconds.
type Controller struct {
	track  track.Track
	params Params
	state  MassState
	startX float64
	phase  Phase
	view   Viewport
	ledger Ledger
	report EnergyReport
	time   float64
}

func NewController(tr track.Track, params Params, mass, startX float64, view Viewport) *Controller {
	c := &Controller{
		track:  tr,
		params: params,
		startX: startX,
		view:   view,
	}
	c.state.Mass = mass
	c.resetState()
	c.refresh()
	return c
}

// NewDefault builds a controller with the stock session: the default
// parabola, gravity, mass, and off-center start, friction disabled.
func NewDefault(view Viewport) *Controller {
	return NewController(
		track.New(DefaultCurvature),
		Params{Gravity: DefaultGravity},
		DefaultMass,
		DefaultStartX,
		view,
	)
}

func (c *Controller) resetState() {
	c.state.X = c.startX
	c.state.Y = c.track.Height(c.startX)
	c.state.V = 0
	c.time = 0
	c.ledger.Invalidate()
}

func (c *Controller) refresh() {
	c.report = c.ledger.Compute(c.state, c.params, c.phase == PhaseDragging)
}

// AdvanceFrame is the per-frame driver entry point. Elapsed wall time
// is clamped to MaxFrameDt and split into SubSteps integration steps
// when running. The energy report is refreshed regardless of phase, so
// a paused or dragged scene still reads correct values.
func (c *Controller) AdvanceFrame(elapsed float64) {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrameDt {
		elapsed = MaxFrameDt
	}

	if c.phase == PhaseRunning {
		dt := elapsed / SubSteps
		for i := 0; i < SubSteps; i++ {
			c.state = Step(c.state, c.params, c.track, dt)
		}
		c.time += elapsed
	}

	c.refresh()
}

// Grab attempts to pick up the bead at the given screen position. A
// hit within GrabRadius of the rendered bead center enters the
// dragging phase, zeroes the velocity, and invalidates the baseline.
func (c *Controller) Grab(pointerX, pointerY float64) bool {
	sx, sy := c.view.ToScreen(c.state.X, c.state.Y)
	if screenDistance(pointerX, pointerY, sx, sy) > GrabRadius {
		return false
	}
	c.phase = PhaseDragging
	c.state.V = 0
	c.ledger.Invalidate()
	c.refresh()
	return true
}

// DragTo repositions the bead from a pointer's horizontal screen
// coordinate. Ignored outside the dragging phase.
func (c *Controller) DragTo(pointerX float64) {
	if c.phase != PhaseDragging {
		return
	}
	c.state.X = c.view.WorldX(pointerX)
	c.state.Y = c.track.Height(c.state.X)
	c.state.V = 0
	c.refresh()
}

// Release ends dragging. The baseline stays invalid until the first
// positive-energy reading after release recaptures it.
func (c *Controller) Release() {
	if c.phase != PhaseDragging {
		return
	}
	c.phase = PhaseIdle
	c.ledger.Invalidate()
	c.refresh()
}

// ToggleRun flips between idle and running. Ignored while dragging;
// the grab already forced the simulation off.
func (c *Controller) ToggleRun() {
	switch c.phase {
	case PhaseIdle:
		c.phase = PhaseRunning
	case PhaseRunning:
		c.phase = PhaseIdle
	}
}

// Reset restores the starting position with zero velocity, clears the
// baseline and thermal energy, and returns to idle.
func (c *Controller) Reset() {
	c.phase = PhaseIdle
	c.resetState()
	c.refresh()
}

func (c *Controller) SetGravity(value float64) {
	c.params.Gravity = value
	c.refresh()
}

// SetFriction enables or disables linear drag. Disabled friction is a
// zero coefficient, not a separate flag.
func (c *Controller) SetFriction(enabled bool, coefficient float64) {
	if !enabled {
		c.params.Friction = 0
	} else {
		c.params.Friction = coefficient
	}
}

func (c *Controller) SetViewport(view Viewport) { c.view = view }

func (c *Controller) MassState() MassState       { return c.state }
func (c *Controller) EnergyReport() EnergyReport { return c.report }
func (c *Controller) Phase() Phase               { return c.phase }
func (c *Controller) Params() Params             { return c.params }
func (c *Controller) Track() track.Track         { return c.track }

// Time returns accumulated simulated seconds since the last reset.
func (c *Controller) Time() float64 { return c.time }
