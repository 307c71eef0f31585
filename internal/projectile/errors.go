package projectile

import "errors"

// Domain errors for parameter checks and abnormal termination.
var (
	// ErrInvalidVelocity indicates a non-positive or non-finite launch speed.
	ErrInvalidVelocity = errors.New("projectile: initial velocity must be positive")

	// ErrInvalidAngle indicates a launch angle outside [0, 90] degrees.
	ErrInvalidAngle = errors.New("projectile: launch angle must be between 0 and 90 degrees")

	// ErrInvalidHeight indicates a negative or non-finite launch height.
	ErrInvalidHeight = errors.New("projectile: initial height cannot be negative")

	// ErrInvalidTimeStep indicates a non-positive or non-finite time step.
	ErrInvalidTimeStep = errors.New("projectile: time step must be positive")

	// ErrInvalidGravity indicates a NaN or infinite gravity value.
	ErrInvalidGravity = errors.New("projectile: gravity must be finite")

	// ErrNonFinite indicates launch values the simulation cannot step through,
	// such as an infinite speed or a horizon that overflows.
	ErrNonFinite = errors.New("projectile: launch parameters must be finite")

	// ErrTooManySteps indicates a horizon too long for the time step.
	ErrTooManySteps = errors.New("projectile: trajectory needs too many time steps")

	// ErrSafetyLimit indicates the ground was not reached within the time horizon.
	ErrSafetyLimit = errors.New("projectile: simulation time exceeded safety limit")
)
