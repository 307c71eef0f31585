package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	DefaultFormat   = "csv"
	DefaultLogLevel = "info"
)

type Config struct {
	Velocity float64      `yaml:"velocity"`
	Angle    float64      `yaml:"angle"`
	Height   float64      `yaml:"height"`
	Gravity  float64      `yaml:"gravity"`
	Dt       float64      `yaml:"dt"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Plot   bool   `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Velocity: projectile.DefaultVelocity,
		Angle:    projectile.DefaultAngle,
		Height:   projectile.DefaultHeight,
		Gravity:  projectile.DefaultGravity,
		Dt:       projectile.DefaultTimeStep,
		Output: OutputConfig{
			Format: DefaultFormat,
			Plot:   true,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params returns the launch parameters described by the config.
func (c *Config) Params() projectile.Parameters {
	return projectile.Parameters{
		InitialVelocity: c.Velocity,
		LaunchAngleDeg:  c.Angle,
		InitialHeight:   c.Height,
		Gravity:         c.Gravity,
		TimeStep:        c.Dt,
	}
}

// Validate checks the launch parameters and the output format.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "csv", "json", "svg", "svg-dots":
		return nil
	default:
		return fmt.Errorf("unknown output format: %q", c.Output.Format)
	}
}
