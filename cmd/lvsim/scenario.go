package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/lvsim/internal/config"
	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/validate"
)

// scenario holds the flags shared by every command that runs the model.
type scenario struct {
	preset     string
	configFile string
	bundle     string
	scheme     string
	alpha      float64
	beta       float64
	delta      float64
	gamma      float64
	p0         float64
	d0         float64
	tmax       float64
	h          float64
	steps      int
}

func addScenarioFlags(cmd *cobra.Command, s *scenario) {
	f := cmd.Flags()
	f.StringVar(&s.preset, "preset", "", "start from a named preset (see 'lvsim presets')")
	f.StringVar(&s.configFile, "config", "", "config file path (yaml)")
	f.StringVarP(&s.bundle, "file", "f", "", "parameter bundle (json or yaml) with alpha, beta, delta, gamma, P0, D0, t_max and optional h, n_steps")
	f.StringVar(&s.scheme, "scheme", config.DefaultScheme, "integration scheme (euler, rk4)")
	f.Float64Var(&s.alpha, "alpha", lotka.DefaultAlpha, "prey growth rate")
	f.Float64Var(&s.beta, "beta", lotka.DefaultBeta, "predation rate")
	f.Float64Var(&s.delta, "delta", lotka.DefaultDelta, "predator reproduction per prey eaten")
	f.Float64Var(&s.gamma, "gamma", lotka.DefaultGamma, "predator mortality")
	f.Float64Var(&s.p0, "p0", lotka.DefaultP0, "initial prey population")
	f.Float64Var(&s.d0, "d0", lotka.DefaultD0, "initial predator population")
	f.Float64Var(&s.tmax, "tmax", config.DefaultTMax, "time horizon")
	f.Float64Var(&s.h, "h", config.DefaultH, "step size")
	f.IntVar(&s.steps, "steps", 0, "exact number of steps (overrides --tmax)")
}

// resolveConfig layers preset, config file, parameter bundle and
// explicitly set flags, in that order. A malformed bundle is an
// *experiment.InputError.
func resolveConfig(cmd *cobra.Command, s *scenario) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if s.preset != "" {
		cfg = config.GetPreset(s.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", s.preset, config.ListPresets())
		}
	}

	if s.configFile != "" {
		loaded, err := config.Merge(s.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if s.bundle != "" {
		raw, err := readBundle(s.bundle)
		if err != nil {
			return nil, err
		}
		in, err := validate.Decode(raw)
		if err != nil {
			return nil, experiment.NewInputError(err)
		}
		cfg.Apply(in)
	}

	flags := cmd.Flags()
	if flags.Changed("scheme") {
		cfg.Scheme = s.scheme
	}
	if flags.Changed("alpha") {
		cfg.Params.Alpha = s.alpha
	}
	if flags.Changed("beta") {
		cfg.Params.Beta = s.beta
	}
	if flags.Changed("delta") {
		cfg.Params.Delta = s.delta
	}
	if flags.Changed("gamma") {
		cfg.Params.Gamma = s.gamma
	}
	if flags.Changed("p0") {
		cfg.Initial.P0 = s.p0
	}
	if flags.Changed("d0") {
		cfg.Initial.D0 = s.d0
	}
	if flags.Changed("tmax") {
		cfg.TMax = s.tmax
		if !flags.Changed("steps") {
			cfg.Steps = 0
		}
	}
	if flags.Changed("h") {
		cfg.H = s.h
	}
	if flags.Changed("steps") {
		cfg.Steps = s.steps
	}
	return cfg, nil
}

// scenarioSetup resolves the config and applies its log settings.
func (a *app) scenarioSetup(cmd *cobra.Command, s *scenario) (*config.Config, error) {
	cfg, err := resolveConfig(cmd, s)
	if err != nil {
		return nil, err
	}
	if err := a.applyLogConfig(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readBundle decodes a JSON or YAML object into a loosely typed map. JSON
// numbers keep their literal form so integers and floats both decode.
func readBundle(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var bundle map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bundle)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&bundle)
	}
	if err != nil {
		return nil, fmt.Errorf("parse bundle %s: %w", path, err)
	}
	return bundle, nil
}
