package sim

// Ledger derives the energy partition from the bead's state and a
// conservation baseline captured at the start of each free-motion
// interval.
//
// Thermal energy is the clamped residual between the baseline and the
// current mechanical energy. It is not the integral of the drag
// force's work: the integrator's deceleration term and this residual
// are two independent approximations of the same loss and do not match
// step for step. The clamp absorbs the mismatch.
type Ledger struct {
	baseline    float64
	baselineSet bool
}

// Invalidate discards the baseline. The next non-dragging Compute with
// positive mechanical energy recaptures it.
func (l *Ledger) Invalidate() {
	l.baseline = 0
	l.baselineSet = false
}

// Baseline returns the reference energy and whether one is set. The
// unset state is distinct from zero so a momentarily-zero reading does
// not retrigger capture.
func (l *Ledger) Baseline() (float64, bool) {
	return l.baseline, l.baselineSet
}

// Compute returns the current energy partition. While dragging, the
// baseline follows the bead (user-injected energy resets the
// conservation reference) and thermal is forced to zero.
func (l *Ledger) Compute(s MassState, p Params, dragging bool) EnergyReport {
	potential := s.Mass * p.GravityScaled() * s.Y * EnergyScale
	kinetic := 0.5 * s.Mass * s.V * s.V * EnergyScale
	mechanical := potential + kinetic

	thermal := 0.0
	if dragging {
		l.baseline = mechanical
		l.baselineSet = true
	} else {
		if !l.baselineSet && mechanical > 0 {
			l.baseline = mechanical
			l.baselineSet = true
		}
		if l.baselineSet {
			thermal = l.baseline - mechanical
			if thermal < 0 {
				thermal = 0
			}
		}
	}

	return EnergyReport{
		Potential: potential,
		Kinetic:   kinetic,
		Thermal:   thermal,
		Total:     potential + kinetic + thermal,
	}
}
