// Package form turns raw text input into checked simulation parameters.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	FieldVelocity = "initial_velocity"
	FieldAngle    = "launch_angle"
	FieldHeight   = "initial_height"
)

const (
	msgNotNumeric = "Invalid input. Please enter numeric values."
	msgVelocity   = "Initial velocity must be positive."
	msgAngle      = "Launch angle must be between 0 and 90 degrees."
	msgHeight     = "Initial height cannot be negative."
)

// Error is a user-facing validation failure for one field.
type Error struct {
	Field   string
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Parse reads the launch fields from values. Gravity and time step are taken
// from base. Checks run in field order and the first failure is returned.
func Parse(values map[string]string, base projectile.Parameters) (projectile.Parameters, error) {
	p := base

	v, err := required(values, FieldVelocity)
	if err != nil {
		return base, err
	}
	angle, err := required(values, FieldAngle)
	if err != nil {
		return base, err
	}
	h, err := optional(values, FieldHeight)
	if err != nil {
		return base, err
	}

	p.InitialVelocity, p.LaunchAngleDeg, p.InitialHeight = v, angle, h

	if !(p.InitialVelocity > 0) || math.IsInf(p.InitialVelocity, 0) {
		return base, &Error{Field: FieldVelocity, Message: msgVelocity, Wrapped: projectile.ErrInvalidVelocity}
	}
	if !(p.LaunchAngleDeg >= 0 && p.LaunchAngleDeg <= 90) {
		return base, &Error{Field: FieldAngle, Message: msgAngle, Wrapped: projectile.ErrInvalidAngle}
	}
	if !(p.InitialHeight >= 0) || math.IsInf(p.InitialHeight, 0) {
		return base, &Error{Field: FieldHeight, Message: msgHeight, Wrapped: projectile.ErrInvalidHeight}
	}

	return p, nil
}

func required(values map[string]string, key string) (float64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, &Error{
			Field:   key,
			Message: fmt.Sprintf("Missing required field: '%s'. Please fill all fields.", key),
		}
	}
	return number(key, raw)
}

// optional treats a missing or blank field as zero.
func optional(values map[string]string, key string) (float64, error) {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return 0, nil
	}
	return number(key, raw)
}

func number(key, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &Error{Field: key, Message: msgNotNumeric, Wrapped: err}
	}
	return v, nil
}
