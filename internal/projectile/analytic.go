package projectile

import "math"

// Analytic returns the closed-form metrics for the launch. It reports false
// when gravity is not positive, since there is then no landing to solve for.
func Analytic(p Parameters) (Metrics, bool) {
	g := p.Gravity
	if g <= 0 {
		return Metrics{}, false
	}

	v0x, v0y := p.Components()
	h := p.InitialHeight

	// Positive root of h + v0y*t - g*t^2/2 = 0.
	tof := (v0y + math.Sqrt(v0y*v0y+2*g*h)) / g

	apex := h
	if v0y > 0 {
		apex = h + v0y*v0y/(2*g)
	}

	return Metrics{
		MaxHeight:    apex,
		TotalRange:   v0x * tof,
		TimeOfFlight: tof,
	}, true
}

// PositionAt evaluates the exact position at time t, ignoring the ground.
func PositionAt(p Parameters, t float64) Point {
	v0x, v0y := p.Components()
	return Point{
		X: v0x * t,
		Y: p.InitialHeight + v0y*t - 0.5*p.Gravity*t*t,
	}
}
