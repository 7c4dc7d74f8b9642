package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/slidesim/internal/sim"
	"github.com/san-kum/slidesim/internal/track"
)

const frameDt = 1.0 / 60

func newController(friction float64) *sim.Controller {
	return sim.NewController(
		track.New(sim.DefaultCurvature),
		sim.Params{Gravity: sim.DefaultGravity, Friction: friction},
		sim.DefaultMass,
		sim.DefaultStartX,
		sim.Viewport{},
	)
}

var _ = Describe("energy accounting", func() {
	Describe("without friction", func() {
		It("conserves total energy over a long run", func() {
			c := newController(0)
			c.ToggleRun()

			initial := c.EnergyReport().Total
			Expect(initial).To(BeNumerically(">", 0))

			for i := 0; i < 600; i++ { // 10 simulated seconds
				c.AdvanceFrame(frameDt)
				total := c.EnergyReport().Total
				Expect(total).To(BeNumerically("~", initial, 0.05*initial))
			}
		})
	})

	Describe("with friction", func() {
		It("keeps total non-increasing and thermal non-decreasing", func() {
			c := newController(0.3)
			c.ToggleRun()

			prev := c.EnergyReport()
			slack := 0.02 * prev.Total

			for i := 0; i < 900; i++ {
				c.AdvanceFrame(frameDt)
				r := c.EnergyReport()
				Expect(r.Total).To(BeNumerically("<=", prev.Total+slack))
				Expect(r.Thermal).To(BeNumerically(">=", prev.Thermal-slack))
				prev = r
			}

			Expect(prev.Thermal).To(BeNumerically(">", 0))
		})

		It("eventually converts most mechanical energy to thermal", func() {
			c := newController(1.5)
			c.ToggleRun()

			for i := 0; i < 3600; i++ { // 60 simulated seconds
				c.AdvanceFrame(frameDt)
			}

			r := c.EnergyReport()
			Expect(r.Kinetic).To(BeNumerically("<", 0.1*r.Total))
			Expect(r.Thermal).To(BeNumerically(">", 0.5*r.Total))
		})
	})

	Describe("thermal floor", func() {
		It("never reports negative thermal across mixed operations", func() {
			c := newController(0.3)
			check := func() {
				Expect(c.EnergyReport().Thermal).To(BeNumerically(">=", 0))
			}

			check()
			c.ToggleRun()
			for i := 0; i < 120; i++ {
				c.AdvanceFrame(frameDt)
				check()
			}

			c.SetGravity(4.0)
			c.AdvanceFrame(frameDt)
			check()

			sx, sy := sim.Viewport{}.ToScreen(c.MassState().X, c.MassState().Y)
			Expect(c.Grab(sx, sy)).To(BeTrue())
			check()
			c.DragTo(90)
			check()
			c.Release()
			for i := 0; i < 120; i++ {
				c.AdvanceFrame(frameDt)
				check()
			}
		})
	})

	Describe("dragging", func() {
		It("invalidates the baseline and recaptures it on release", func() {
			c := newController(0.3)
			c.ToggleRun()
			for i := 0; i < 300; i++ {
				c.AdvanceFrame(frameDt)
			}
			Expect(c.EnergyReport().Thermal).To(BeNumerically(">", 0))

			s := c.MassState()
			sx, sy := sim.Viewport{}.ToScreen(s.X, s.Y)
			Expect(c.Grab(sx, sy)).To(BeTrue())
			c.DragTo(-75)

			Expect(c.EnergyReport().Thermal).To(BeZero())

			c.Release()
			c.AdvanceFrame(frameDt)

			r := c.EnergyReport()
			Expect(r.Thermal).To(BeZero())
			Expect(r.Total).To(BeNumerically("~", r.Potential+r.Kinetic, 1e-9))
		})
	})
})
