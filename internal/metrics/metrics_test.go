package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/slidesim/internal/sim"
)

func report(total, thermal, kinetic float64) sim.EnergyReport {
	return sim.EnergyReport{
		Potential: total - thermal - kinetic,
		Kinetic:   kinetic,
		Thermal:   thermal,
		Total:     total,
	}
}

func TestDriftConstantSeries(t *testing.T) {
	d := NewDrift()
	for i := 0; i < 10; i++ {
		d.Observe(report(73.5, 0, 10))
	}
	if d.Value() != 0 {
		t.Errorf("constant totals must not drift, got %f", d.Value())
	}
}

func TestDriftTracksWorstDeviation(t *testing.T) {
	d := NewDrift()
	d.Observe(report(100, 0, 0))
	d.Observe(report(95, 0, 0))
	d.Observe(report(99, 0, 0))

	if math.Abs(d.Value()-0.05) > 1e-12 {
		t.Errorf("expected max drift 0.05, got %f", d.Value())
	}
}

func TestDriftReset(t *testing.T) {
	d := NewDrift()
	d.Observe(report(100, 0, 0))
	d.Observe(report(50, 0, 0))
	d.Reset()
	if d.Value() != 0 {
		t.Errorf("reset should clear drift, got %f", d.Value())
	}

	// A fresh baseline after reset.
	d.Observe(report(50, 0, 0))
	if d.Value() != 0 {
		t.Errorf("first post-reset sample is the new baseline, got %f", d.Value())
	}
}

func TestThermalGain(t *testing.T) {
	g := NewThermalGain()
	if g.Value() != 0 {
		t.Error("no samples means zero gain")
	}
	g.Observe(report(100, 5, 0))
	g.Observe(report(100, 12, 0))
	if g.Value() != 12 {
		t.Errorf("expected last thermal 12, got %f", g.Value())
	}
	g.Reset()
	if g.Value() != 0 {
		t.Errorf("reset should clear gain, got %f", g.Value())
	}
}

func TestPeakKinetic(t *testing.T) {
	p := NewPeakKinetic()
	p.Observe(report(100, 0, 20))
	p.Observe(report(100, 0, 45))
	p.Observe(report(100, 0, 10))
	if p.Value() != 45 {
		t.Errorf("expected peak 45, got %f", p.Value())
	}
}
