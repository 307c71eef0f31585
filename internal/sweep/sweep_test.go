package sweep

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/projectile"
)

func TestAnglesFindsFortyFive(t *testing.T) {
	g := NewWithT(t)

	samples, err := Angles(context.Background(), projectile.DefaultParameters(), 0, 90, 5, 4)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(samples).To(HaveLen(19))

	for i, s := range samples {
		g.Expect(s.Params.LaunchAngleDeg).To(BeNumerically("~", float64(i)*5, 1e-9))
		g.Expect(s.Landed).To(BeTrue())
	}

	best, ok := Best(samples)
	g.Expect(ok).To(BeTrue())
	g.Expect(best.Params.LaunchAngleDeg).To(Equal(45.0))
	g.Expect(best.TotalRange).To(BeNumerically("~", 40.77, 0.05))
}

func TestAnglesMatchSerialRuns(t *testing.T) {
	g := NewWithT(t)

	base := projectile.DefaultParameters()
	base.InitialHeight = 7
	samples, err := Angles(context.Background(), base, 10, 80, 7.5, 0)
	g.Expect(err).NotTo(HaveOccurred())

	for _, s := range samples {
		r := projectile.Simulate(s.Params)
		g.Expect(s.Metrics).To(Equal(r.Metrics))
	}
	g.Expect(samples[len(samples)-1].Params.LaunchAngleDeg).To(Equal(77.5))
}

func TestAnglesInvalidRange(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	base := projectile.DefaultParameters()

	_, err := Angles(ctx, base, 0, 90, 0, 1)
	g.Expect(err).To(HaveOccurred())

	_, err = Angles(ctx, base, 50, 40, 1, 1)
	g.Expect(err).To(MatchError(projectile.ErrInvalidAngle))

	_, err = Angles(ctx, base, 0, 95, 1, 1)
	g.Expect(err).To(MatchError(projectile.ErrInvalidAngle))
}

func TestRunCanceled(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []projectile.Parameters{projectile.DefaultParameters()}, 1)
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestBest(t *testing.T) {
	g := NewWithT(t)

	_, ok := Best(nil)
	g.Expect(ok).To(BeFalse())

	samples := []Sample{
		{Params: projectile.Parameters{LaunchAngleDeg: 40}, Metrics: projectile.Metrics{TotalRange: 10}},
		{Params: projectile.Parameters{LaunchAngleDeg: 45}, Metrics: projectile.Metrics{TotalRange: 12}},
		{Params: projectile.Parameters{LaunchAngleDeg: 50}, Metrics: projectile.Metrics{TotalRange: 12}},
	}
	best, ok := Best(samples)
	g.Expect(ok).To(BeTrue())
	g.Expect(best.Params.LaunchAngleDeg).To(Equal(45.0))
}
