package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/validate"
)

const (
	DefaultScheme    = "rk4"
	DefaultTMax      = 50.0
	DefaultH         = 0.05
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is one run's complete input. Steps, when set, replaces TMax as
// the run length: the run takes exactly Steps steps of size H.
type Config struct {
	Scheme  string          `yaml:"scheme"`
	Params  lotka.Params    `yaml:"params"`
	Initial InitialConfig   `yaml:"initial"`
	TMax    float64         `yaml:"t_max"`
	H       float64         `yaml:"h"`
	Steps   int             `yaml:"n_steps,omitempty"`
	Limits  validate.Limits `yaml:"limits"`
	Log     LogConfig       `yaml:"log"`
}

type InitialConfig struct {
	P0 float64 `yaml:"P0"`
	D0 float64 `yaml:"D0"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme: DefaultScheme,
		Params: lotka.DefaultParams(),
		Initial: InitialConfig{
			P0: lotka.DefaultP0,
			D0: lotka.DefaultD0,
		},
		TMax:   DefaultTMax,
		H:      DefaultH,
		Limits: validate.DefaultLimits(),
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads a YAML file over DefaultConfig, so omitted keys keep their
// defaults.
func Load(path string) (*Config, error) {
	return Merge(path, DefaultConfig())
}

// Merge reads a YAML file over a copy of base. base is not modified.
func Merge(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
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

// Input returns the run parameters in validator form. When Steps is set
// the horizon is Steps*H.
func (c *Config) Input() validate.Input {
	in := validate.Input{
		Alpha: c.Params.Alpha,
		Beta:  c.Params.Beta,
		Delta: c.Params.Delta,
		Gamma: c.Params.Gamma,
		P0:    c.Initial.P0,
		D0:    c.Initial.D0,
		TMax:  c.TMax,
		H:     c.H,
		Steps: c.Steps,
	}
	in.TMax = in.Horizon()
	return in
}

// Apply copies a decoded bundle into the config. A zero H keeps the current
// step size; the bundle's n_steps, or its absence, always replaces Steps.
func (c *Config) Apply(in validate.Input) {
	c.Params = lotka.Params{Alpha: in.Alpha, Beta: in.Beta, Delta: in.Delta, Gamma: in.Gamma}
	c.Initial = InitialConfig{P0: in.P0, D0: in.D0}
	c.TMax = in.TMax
	if in.H != 0 {
		c.H = in.H
	}
	c.Steps = in.Steps
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
