package config

import (
	"sort"

	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/validate"
)

func preset(mod func(c *Config)) *Config {
	c := DefaultConfig()
	mod(c)
	return c
}

var Presets = map[string]*Config{
	"classic": preset(func(c *Config) {}),
	"equilibrium": preset(func(c *Config) {
		c.Initial = InitialConfig{P0: 30, D0: 16}
	}),
	"comparison": preset(func(c *Config) {
		c.H = 0.5
		c.Steps = 10
		c.TMax = 5
	}),
	"long-run": preset(func(c *Config) {
		c.TMax = 200
		c.H = 0.1
	}),
	"coarse-euler": preset(func(c *Config) {
		c.Scheme = "euler"
		c.TMax = 100
		c.H = 0.5
	}),
	"predator-collapse": preset(func(c *Config) {
		c.Scheme = "euler"
		c.TMax = 20
		c.H = 1.0
	}),
	"prey-only": preset(func(c *Config) {
		c.Initial = InitialConfig{P0: 80, D0: 0}
		c.TMax = 10
		c.H = 0.1
	}),
	"predators-only": preset(func(c *Config) {
		c.Initial = InitialConfig{P0: 0, D0: 20}
		c.TMax = 30
		c.H = 0.1
	}),
	"fast": preset(func(c *Config) {
		c.Params = lotka.Params{Alpha: 2, Beta: 0.5, Delta: 0.2, Gamma: 1.5}
		c.Initial = InitialConfig{P0: 10, D0: 5}
		c.TMax = 20
		c.H = 0.25
	}),
	"strict-limits": preset(func(c *Config) {
		c.Limits = validate.Limits{MaxTime: 100, MinTime: 10, MaxPopulation: 1000, MinStep: 0.01}
		c.TMax = 60
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
