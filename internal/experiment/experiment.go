package experiment

import (
	"errors"
	"log/slog"
	"time"

	"github.com/san-kum/lvsim/internal/compare"
	"github.com/san-kum/lvsim/internal/config"
	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/logging"
	"github.com/san-kum/lvsim/internal/lotka"
)

// Equilibrium is the coexistence fixed point of the run's parameters.
type Equilibrium struct {
	P float64 `json:"P"`
	D float64 `json:"D"`
}

// Outcome is a finished single-scheme run.
type Outcome struct {
	Trajectory  *lotka.Trajectory  `json:"trajectory"`
	Metrics     map[string]float64 `json:"metrics"`
	Equilibrium Equilibrium        `json:"equilibrium"`
	Elapsed     time.Duration      `json:"elapsed_ns"`
}

type Experiment struct {
	cfg      *config.Config
	registry *Registry
	logger   *slog.Logger
}

type Option func(*Experiment)

func WithLogger(l *slog.Logger) Option {
	return func(e *Experiment) { e.logger = l }
}

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks the configuration the same way Run does, without
// integrating. Failures are *InputError.
func (e *Experiment) Validate() error {
	if _, err := e.registry.GetScheme(e.cfg.Scheme); err != nil {
		return NewInputError(err)
	}
	return e.checkInput()
}

func (e *Experiment) checkInput() error {
	if err := e.cfg.Limits.CheckRun(e.cfg.Input()); err != nil {
		return NewInputError(err)
	}
	return nil
}

// Run validates the configuration and integrates it with the configured
// scheme.
func (e *Experiment) Run() (*Outcome, error) {
	info, err := e.registry.GetScheme(e.cfg.Scheme)
	if err != nil {
		e.logger.Warn("input rejected", "reason", err.Error())
		return nil, NewInputError(err)
	}
	if err := e.checkInput(); err != nil {
		e.logger.Warn("input rejected", "reason", err.Error())
		return nil, err
	}

	cfg := e.cfg
	log := e.logger.With("scheme", info.Scheme, "h", cfg.H)
	log.Debug("run starting", "P0", cfg.Initial.P0, "D0", cfg.Initial.D0, "t_max", cfg.TMax, "n_steps", cfg.Steps)

	opts := lotka.Options{
		MaxSteps: cfg.Limits.MaxSteps(),
		Metrics:  e.registry.DefaultMetrics(cfg.Params),
	}

	start := time.Now()
	var tr *lotka.Trajectory
	if cfg.Steps > 0 {
		tr, err = lotka.IntegrateStepsWith(info.Scheme, cfg.Params, cfg.Initial.P0, cfg.Initial.D0, cfg.H, cfg.Steps, opts)
	} else {
		tr, err = lotka.IntegrateWith(info.Scheme, cfg.Params, cfg.Initial.P0, cfg.Initial.D0, cfg.TMax, cfg.H, opts)
	}
	if err != nil {
		e.logFailure(log, err)
		return nil, err
	}
	elapsed := time.Since(start)

	out := &Outcome{
		Trajectory: tr,
		Metrics:    tr.Metrics,
		Elapsed:    elapsed,
	}
	// Check has already rejected zero beta and delta.
	if p, d, err := cfg.Params.Equilibrium(); err == nil {
		out.Equilibrium = Equilibrium{P: p, D: d}
	}

	_, pf, df := tr.Final()
	log.Info("run finished", "samples", tr.Len(), "P", pf, "D", df, "elapsed", elapsed)
	return out, nil
}

// Compare validates the configuration and runs both schemes side by side.
// The configured scheme is ignored.
func (e *Experiment) Compare() (*compare.Comparison, error) {
	if err := e.checkInput(); err != nil {
		e.logger.Warn("input rejected", "reason", err.Error())
		return nil, err
	}

	cfg := e.cfg
	log := e.logger.With("h", cfg.H)
	opts := compare.Options{MaxSteps: cfg.Limits.MaxSteps(), WithMetrics: true}

	start := time.Now()
	var (
		c   *compare.Comparison
		err error
	)
	if cfg.Steps > 0 {
		c, err = compare.RunStepsWith(cfg.Params, cfg.Initial.P0, cfg.Initial.D0, cfg.H, cfg.Steps, opts)
	} else {
		c, err = compare.RunWith(cfg.Params, cfg.Initial.P0, cfg.Initial.D0, cfg.TMax, cfg.H, opts)
	}
	if err != nil {
		e.logFailure(log, err)
		return nil, err
	}

	final := c.Final()
	log.Info("comparison finished", "samples", c.Len(), "diff_P", final.DiffP, "diff_D", final.DiffD,
		"band", final.Band, "elapsed", time.Since(start))
	return c, nil
}

func (e *Experiment) logFailure(log *slog.Logger, err error) {
	var simErr *dynamo.SimulationError
	if errors.As(err, &simErr) {
		log.Error("integration diverged", "step", simErr.Step, "t", simErr.Time, "err", err)
		return
	}
	log.Error("integration failed", "err", err)
}

func (e *Experiment) Config() *config.Config { return e.cfg }
