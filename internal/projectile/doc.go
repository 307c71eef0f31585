// Package projectile computes the two-dimensional trajectory of a projectile
// launched under constant gravity.
//
// The simulation is a fixed-step sampler over the closed-form kinematic
// position, so each sample is evaluated from absolute time and no error
// accumulates between steps. The ground crossing is resolved by linear
// interpolation between the two samples that straddle y=0.
//
//   - [Parameters]: launch conditions, owned by the caller
//   - [Simulate]: runs one simulation and returns a fresh [Result]
//   - [Analytic]: closed-form reference metrics for positive gravity
//
// # Example
//
//	p := projectile.DefaultParameters()
//	p.LaunchAngleDeg = 30
//	r := projectile.Simulate(p)
//	if err := r.Err(); err != nil {
//	    // partial trajectory, still usable
//	}
//
// # Thread Safety
//
// Simulate has no shared state. Any number of simulations may run in parallel.
package projectile
