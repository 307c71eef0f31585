package projectile

import "math"

const (
	horizonFactor    = 1.5
	horizonPadSteps  = 5
	minHorizonSteps  = 100
	flatHorizonSteps = 1000

	// terminalNudge offsets the synthetic end point so a chart always has a segment.
	terminalNudge = 0.01

	maxPrealloc = 1 << 16

	// maxSteps bounds the work a single run may be asked to do.
	maxSteps = 1 << 24
)

const (
	invalidStepWarning  = "time step must be positive; nothing simulated"
	nonFiniteWarning    = "launch parameters must be finite; nothing simulated"
	tooManyStepsWarning = "trajectory needs too many time steps; nothing simulated"
)

// Simulate runs one trajectory simulation. It never fails: a run that hits the
// time horizon returns the partial trajectory with Warning set.
//
// Parameters are expected to be validated by the caller. Inputs that would
// keep the loop from terminating in reasonable time are re-checked and return
// only the launch point with a warning.
func Simulate(p Parameters) *Result {
	v0x, v0y := p.Components()
	h := p.InitialHeight

	// Nothing moves: launched from the ground with no lift and no travel.
	if h == 0 && (p.LaunchAngleDeg == 0 || (v0y <= 0 && v0x == 0)) {
		return &Result{Points: []Point{{X: 0, Y: 0}}, Landed: true}
	}

	if !validStep(p.TimeStep) {
		return notSimulated(h, invalidStepWarning)
	}

	if !finite(p.InitialVelocity, p.LaunchAngleDeg, h, p.Gravity) {
		return notSimulated(h, nonFiniteWarning)
	}

	dt := p.TimeStep
	maxSimTime := horizon(p, v0y)
	if !finite(maxSimTime) {
		return notSimulated(h, nonFiniteWarning)
	}
	if maxSimTime/dt > maxSteps {
		return notSimulated(h, tooManyStepsWarning)
	}

	result := &Result{
		Points: make([]Point, 0, capacityHint(maxSimTime, dt)),
	}
	result.Points = append(result.Points, Point{X: 0, Y: h})

	t := 0.0
	maxHeight := h

	for {
		t += dt
		x := v0x * t
		y := h + v0y*t - 0.5*p.Gravity*t*t
		maxHeight = math.Max(maxHeight, y)
		result.Steps++

		if y < 0 {
			tPrev := t - dt
			pt, tImpact := landing(result.Last(), tPrev, y, dt, v0x)
			result.Points = append(result.Points, pt)
			result.TimeOfFlight = tImpact
			result.TotalRange = pt.X
			result.Landed = true
			break
		}

		result.Points = append(result.Points, Point{X: x, Y: y})

		if t > maxSimTime {
			result.Warning = SafetyLimitWarning
			result.TimeOfFlight = t
			result.TotalRange = x
			break
		}
	}

	result.MaxHeight = maxHeight

	if len(result.Points) < 2 {
		result.Points = append(result.Points, Point{X: result.TotalRange + terminalNudge, Y: 0})
	}

	return result
}

// notSimulated is the single-point result for input the loop cannot run on.
func notSimulated(h float64, warning string) *Result {
	if !finite(h) {
		h = 0
	}
	return &Result{
		Points:  []Point{{X: 0, Y: h}},
		Metrics: Metrics{MaxHeight: h},
		Warning: warning,
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// landing resolves the ground crossing between prev, sampled at tPrev, and a
// sample at tPrev+dt whose height yNew is below ground. It returns the point
// on the ground and the time it is reached.
//
// When prev is not above ground the crossing cannot be bracketed; the previous
// x is reused and the previous time is reported.
func landing(prev Point, tPrev, yNew, dt, v0x float64) (Point, float64) {
	if prev.Y > 0 {
		f := prev.Y / (prev.Y - yNew)
		tImpact := tPrev + f*dt
		return Point{X: v0x * tImpact, Y: 0}, tImpact
	}
	return Point{X: prev.X, Y: 0}, tPrev
}

// horizon bounds simulated time. For positive gravity it is a padded
// estimate of the analytic flight time. Without downward pull there is no
// landing to estimate, so a fixed number of steps is allowed.
func horizon(p Parameters, v0y float64) float64 {
	dt := p.TimeStep
	g := p.Gravity

	if g <= 0 {
		return flatHorizonSteps * dt
	}

	tPeak := 0.0
	hPeak := p.InitialHeight
	if v0y > 0 {
		tPeak = v0y / g
		hPeak = p.InitialHeight + v0y*tPeak - 0.5*g*tPeak*tPeak
	}

	tFall := 0.0
	if hPeak >= 0 {
		tFall = math.Sqrt(2 * hPeak / g)
	}

	maxSimTime := horizonFactor*(tPeak+tFall) + horizonPadSteps*dt
	if maxSimTime <= dt {
		maxSimTime = minHorizonSteps * dt
	}
	return maxSimTime
}

func capacityHint(maxSimTime, dt float64) int {
	n := maxSimTime/dt + 2
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
