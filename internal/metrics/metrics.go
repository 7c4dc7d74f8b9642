// Package metrics provides per-run observers over energy reports.
package metrics

import (
	"math"

	"github.com/san-kum/slidesim/internal/sim"
)

type Metric interface {
	Name() string
	Observe(r sim.EnergyReport)
	Value() float64
	Reset()
}

// Drift tracks the worst relative deviation of total energy from the
// first observed total. Near zero for frictionless runs; friction runs
// drift by construction since thermal only backfills the residual.
type Drift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewDrift() *Drift { return &Drift{} }

func (d *Drift) Name() string { return "energy_drift" }

func (d *Drift) Observe(r sim.EnergyReport) {
	if d.samples == 0 {
		d.initial = r.Total
	}
	d.samples++
	if d.initial != 0 {
		drift := math.Abs(r.Total-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *Drift) Value() float64 { return d.maxDrift }

func (d *Drift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}

// ThermalGain reports the last observed thermal energy, i.e. the
// total conservation loss over the run.
type ThermalGain struct {
	last    float64
	samples int
}

func NewThermalGain() *ThermalGain { return &ThermalGain{} }

func (t *ThermalGain) Name() string { return "thermal_gain" }

func (t *ThermalGain) Observe(r sim.EnergyReport) {
	t.last = r.Thermal
	t.samples++
}

func (t *ThermalGain) Value() float64 {
	if t.samples == 0 {
		return 0
	}
	return t.last
}

func (t *ThermalGain) Reset() {
	t.last = 0
	t.samples = 0
}

// PeakKinetic reports the largest kinetic energy seen, a proxy for
// the bead's top speed through the valley.
type PeakKinetic struct {
	peak float64
}

func NewPeakKinetic() *PeakKinetic { return &PeakKinetic{} }

func (p *PeakKinetic) Name() string { return "peak_kinetic" }

func (p *PeakKinetic) Observe(r sim.EnergyReport) {
	p.peak = math.Max(p.peak, r.Kinetic)
}

func (p *PeakKinetic) Value() float64 { return p.peak }

func (p *PeakKinetic) Reset() { p.peak = 0 }
