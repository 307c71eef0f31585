package projectile_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/projectile"
)

var _ = Describe("Simulate", func() {
	launch := func(v, angle, h float64) projectile.Parameters {
		p := projectile.DefaultParameters()
		p.InitialVelocity = v
		p.LaunchAngleDeg = angle
		p.InitialHeight = h
		return p
	}

	DescribeTable("invariants for valid launches",
		func(v, angle, h float64) {
			p := launch(v, angle, h)
			r := projectile.Simulate(p)

			Expect(r.Points).NotTo(BeEmpty())
			Expect(r.Points[0]).To(Equal(projectile.Point{X: 0, Y: h}))
			Expect(r.MaxHeight).To(BeNumerically(">=", h))
			Expect(r.TotalRange).To(BeNumerically(">=", 0))
			Expect(r.TimeOfFlight).To(BeNumerically(">=", 0))
			Expect(r.Landed).To(BeTrue())
			Expect(r.Last().Y).To(Equal(0.0))
			Expect(r.Warning).To(BeEmpty())

			for i := 1; i < len(r.Points); i++ {
				Expect(r.Points[i].X).To(BeNumerically(">=", r.Points[i-1].X))
			}
		},
		Entry("default launch", 20.0, 45.0, 0.0),
		Entry("flat from a ledge", 12.0, 0.0, 3.0),
		Entry("steep from a tower", 40.0, 80.0, 100.0),
		Entry("vertical", 15.0, 90.0, 0.0),
		Entry("slow lob", 2.0, 60.0, 0.5),
		Entry("fast shallow", 120.0, 5.0, 0.0),
	)

	Context("when launched upward under gravity", func() {
		It("rises above the launch height", func() {
			for _, angle := range []float64{10, 30, 45, 70, 90} {
				p := launch(25, angle, 2)
				Expect(projectile.Simulate(p).MaxHeight).To(BeNumerically(">", p.InitialHeight), "angle %v", angle)
			}
		})

		It("stays at the launch height when fired horizontally", func() {
			r := projectile.Simulate(launch(25, 0, 8))
			Expect(r.MaxHeight).To(Equal(8.0))
		})
	})

	Context("against closed-form kinematics", func() {
		It("matches the symmetric case within the sampling tolerance", func() {
			p := launch(20, 45, 0)
			r := projectile.Simulate(p)

			rad := math.Pi / 4
			Expect(r.TimeOfFlight).To(BeNumerically("~", 2*20*math.Sin(rad)/p.Gravity, 0.05))
			Expect(r.TotalRange).To(BeNumerically("~", 20*20*math.Sin(2*rad)/p.Gravity, 0.05))
			Expect(r.MaxHeight).To(BeNumerically("~", math.Pow(20*math.Sin(rad), 2)/(2*p.Gravity), 0.05))
		})

		It("converges as the time step shrinks", func() {
			p := launch(35, 40, 12)
			exact, ok := projectile.Analytic(p)
			Expect(ok).To(BeTrue())

			prev := math.Inf(1)
			for _, dt := range []float64{0.2, 0.05, 0.01} {
				p.TimeStep = dt
				errH := math.Abs(projectile.Simulate(p).MaxHeight - exact.MaxHeight)
				Expect(errH).To(BeNumerically("<=", prev))
				prev = errH
			}
		})
	})

	Context("with the degenerate launch", func() {
		It("returns only the origin", func() {
			r := projectile.Simulate(launch(5, 0, 0))
			Expect(r.Points).To(Equal([]projectile.Point{{X: 0, Y: 0}}))
			Expect(r.Metrics).To(Equal(projectile.Metrics{}))
		})
	})

	Context("without gravity", func() {
		It("stops at the safety limit with a partial trajectory", func() {
			p := launch(10, 30, 0)
			p.Gravity = 0
			r := projectile.Simulate(p)

			Expect(r.Landed).To(BeFalse())
			Expect(r.Err()).To(MatchError(projectile.ErrSafetyLimit))
			Expect(r.Warning).To(Equal(projectile.SafetyLimitWarning))
			Expect(len(r.Points)).To(BeNumerically(">", 1000))
		})
	})

	It("is deterministic", func() {
		p := launch(17.3, 52, 1.1)
		Expect(projectile.Simulate(p)).To(Equal(projectile.Simulate(p)))
	})
})

var _ = Describe("PositionAt", func() {
	It("follows the kinematic formula", func() {
		p := projectile.DefaultParameters()
		p.LaunchAngleDeg = 90
		pt := projectile.PositionAt(p, 1)
		Expect(pt.Y).To(BeNumerically("~", 20-0.5*9.81, 1e-9))
		Expect(pt.X).To(BeNumerically("~", 0, 1e-12))
	})
})
