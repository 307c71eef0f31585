// Package sweep runs many independent simulations in parallel.
package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/trajsim/internal/projectile"
)

// Sample is the outcome of one run in a sweep.
type Sample struct {
	Params projectile.Parameters
	projectile.Metrics
	Landed  bool
	Warning string
}

// Run simulates every parameter set on up to workers goroutines. Results keep
// the input order. workers <= 0 uses one worker per CPU.
func Run(ctx context.Context, params []projectile.Parameters, workers int) ([]Sample, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	samples := make([]Sample, len(params))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range params {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := projectile.Simulate(params[i])
			samples[i] = Sample{
				Params:  params[i],
				Metrics: r.Metrics,
				Landed:  r.Landed,
				Warning: r.Warning,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

// Angles sweeps the launch angle over [from, to] in step increments, keeping
// every other parameter from base.
func Angles(ctx context.Context, base projectile.Parameters, from, to, step float64, workers int) ([]Sample, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("sweep step must be positive, got %g", step)
	}
	if from < 0 || to > 90 || from > to {
		return nil, fmt.Errorf("sweep range [%g, %g] must lie within [0, 90]: %w", from, to, projectile.ErrInvalidAngle)
	}

	n := int(math.Floor((to-from)/step+1e-9)) + 1
	params := make([]projectile.Parameters, n)
	for i := range params {
		p := base
		p.LaunchAngleDeg = math.Min(from+float64(i)*step, to)
		params[i] = p
	}

	return Run(ctx, params, workers)
}

// Best returns the sample with the longest range. Ties keep the earlier sample.
func Best(samples []Sample) (Sample, bool) {
	if len(samples) == 0 {
		return Sample{}, false
	}
	best := samples[0]
	for _, s := range samples[1:] {
		if s.TotalRange > best.TotalRange {
			best = s
		}
	}
	return best, true
}
