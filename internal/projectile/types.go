package projectile

import (
	"fmt"
	"math"
)

const (
	DefaultVelocity = 20.0
	DefaultAngle    = 45.0
	DefaultHeight   = 0.0
	DefaultGravity  = 9.81
	DefaultTimeStep = 0.05
)

// SafetyLimitWarning is attached to a Result whose run hit the time horizon.
const SafetyLimitWarning = "simulation time exceeded safety limit; trajectory may be incomplete"

// Parameters are the launch conditions for a single run. Units are SI.
type Parameters struct {
	InitialVelocity float64 `json:"initial_velocity"`
	LaunchAngleDeg  float64 `json:"launch_angle_deg"`
	InitialHeight   float64 `json:"initial_height"`
	Gravity         float64 `json:"gravity"`
	TimeStep        float64 `json:"time_step"`
}

func DefaultParameters() Parameters {
	return Parameters{
		InitialVelocity: DefaultVelocity,
		LaunchAngleDeg:  DefaultAngle,
		InitialHeight:   DefaultHeight,
		Gravity:         DefaultGravity,
		TimeStep:        DefaultTimeStep,
	}
}

// Validate reports the first parameter outside its physical range.
func (p Parameters) Validate() error {
	if !(p.InitialVelocity > 0) || math.IsInf(p.InitialVelocity, 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidVelocity, p.InitialVelocity)
	}
	if !(p.LaunchAngleDeg >= 0 && p.LaunchAngleDeg <= 90) {
		return fmt.Errorf("%w, got %g", ErrInvalidAngle, p.LaunchAngleDeg)
	}
	if !(p.InitialHeight >= 0) || math.IsInf(p.InitialHeight, 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidHeight, p.InitialHeight)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("%w, got %g", ErrInvalidGravity, p.Gravity)
	}
	if !validStep(p.TimeStep) {
		return fmt.Errorf("%w, got %g", ErrInvalidTimeStep, p.TimeStep)
	}
	return nil
}

// Components splits the launch velocity into horizontal and vertical parts.
func (p Parameters) Components() (vx, vy float64) {
	rad := p.LaunchAngleDeg * math.Pi / 180
	return p.InitialVelocity * math.Cos(rad), p.InitialVelocity * math.Sin(rad)
}

func validStep(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 0)
}

// Point is one trajectory sample: horizontal distance and height in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Metrics struct {
	MaxHeight    float64 `json:"max_height"`
	TotalRange   float64 `json:"total_range"`
	TimeOfFlight float64 `json:"time_of_flight"`
}

// Result is the outcome of one simulation. Points are in time order and the
// first point is always the launch position.
type Result struct {
	Points []Point `json:"points"`
	Metrics
	// Warning is empty unless the run ended abnormally.
	Warning string `json:"warning,omitempty"`
	// Landed is set when the run ended on the ground; the last point then has Y == 0.
	Landed bool `json:"landed"`
	Steps  int  `json:"steps"`
}

// Err returns the sentinel matching the result's warning, or nil.
func (r *Result) Err() error {
	switch {
	case r.Warning == "":
		return nil
	case r.Warning == SafetyLimitWarning:
		return ErrSafetyLimit
	case r.Warning == invalidStepWarning:
		return ErrInvalidTimeStep
	case r.Warning == nonFiniteWarning:
		return ErrNonFinite
	case r.Warning == tooManyStepsWarning:
		return ErrTooManySteps
	default:
		return fmt.Errorf("projectile: %s", r.Warning)
	}
}

// Last returns the final trajectory point.
func (r *Result) Last() Point {
	return r.Points[len(r.Points)-1]
}
