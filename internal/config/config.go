package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/slidesim/internal/sim"
)

const (
	DefaultDuration  = 10.0
	DefaultFrameRate = 60
)

// Config is the full session setup: physics parameters, the bead's
// starting point, and headless-run settings.
type Config struct {
	Gravity    float64 `yaml:"gravity"`
	Friction   float64 `yaml:"friction"`
	FrictionOn bool    `yaml:"friction_on"`
	Curvature  float64 `yaml:"curvature"`
	Mass       float64 `yaml:"mass"`
	StartX     float64 `yaml:"start_x"`
	Duration   float64 `yaml:"duration"`
	FrameRate  int     `yaml:"frame_rate"`
}

func Default() *Config {
	return &Config{
		Gravity:   sim.DefaultGravity,
		Friction:  sim.DefaultFriction,
		Curvature: sim.DefaultCurvature,
		Mass:      sim.DefaultMass,
		StartX:    sim.DefaultStartX,
		Duration:  DefaultDuration,
		FrameRate: DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params returns the physics parameters the config describes, with
// friction zeroed when disabled.
func (c *Config) Params() sim.Params {
	p := sim.Params{Gravity: c.Gravity}
	if c.FrictionOn {
		p.Friction = c.Friction
	}
	return p
}
