package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Velocity: 20, Angle: 45, Height: 0, Gravity: 9.81, Dt: 0.05,
	},
	"cliff": {
		Velocity: 15, Angle: 20, Height: 50, Gravity: 9.81, Dt: 0.05,
	},
	"vertical": {
		Velocity: 30, Angle: 90, Height: 0, Gravity: 9.81, Dt: 0.05,
	},
	"lob": {
		Velocity: 12, Angle: 75, Height: 1.5, Gravity: 9.81, Dt: 0.02,
	},
	"flat": {
		Velocity: 40, Angle: 0, Height: 2, Gravity: 9.81, Dt: 0.01,
	},
	"moon": {
		Velocity: 20, Angle: 45, Height: 0, Gravity: 1.62, Dt: 0.1,
	},
	"fine": {
		Velocity: 20, Angle: 45, Height: 0, Gravity: 9.81, Dt: 0.001,
	},
}

// GetPreset returns a copy of the named preset with default output settings,
// or nil when the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Velocity = p.Velocity
	cfg.Angle = p.Angle
	cfg.Height = p.Height
	cfg.Gravity = p.Gravity
	cfg.Dt = p.Dt
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
