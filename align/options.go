package align

import (
	"runtime"

	"github.com/rs/zerolog"
)

// cosineConfig holds the resolved options for Cosine. Zero value is not
// usable directly; use newCosineConfig.
type cosineConfig struct {
	confidence ConfidenceMethod
	nanPolicy  NaNPolicy
	samples    int // P: bootstrap resamples or permutation trials
	seed       uint64
	workers    int
	logger     zerolog.Logger
}

func newCosineConfig(opts ...CosineOption) *cosineConfig {
	cfg := &cosineConfig{
		confidence: ConfidenceBootstrap,
		nanPolicy:  NaNZero,
		samples:    1000,
		seed:       0,
		workers:    runtime.GOMAXPROCS(0),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return cfg
}

// CosineOption configures a Cosine call.
type CosineOption func(*cosineConfig)

// WithConfidenceMethod selects the bootstrap or permutation confidence
// path (SPEC_FULL.md §4.4). Default ConfidenceBootstrap.
func WithConfidenceMethod(m ConfidenceMethod) CosineOption {
	return func(c *cosineConfig) { c.confidence = m }
}

// WithNaNPolicy sets the bootstrap NaN-substitution policy (SPEC_FULL.md
// §9's resolved Open Question). Default NaNZero. It has no effect on the
// permutation path.
func WithNaNPolicy(p NaNPolicy) CosineOption {
	return func(c *cosineConfig) { c.nanPolicy = p }
}

// WithSamples sets P, the bootstrap resample count or permutation trial
// count. Default 1000. Values below 1 are rejected by Cosine with
// ErrInvalidSteps.
func WithSamples(p int) CosineOption {
	return func(c *cosineConfig) { c.samples = p }
}

// WithSeed sets the global seed mixed into every per-job deterministic
// RNG (SPEC_FULL.md §5). Default 0.
func WithSeed(seed uint64) CosineOption {
	return func(c *cosineConfig) { c.seed = seed }
}

// WithWorkers bounds the per-vertex job worker pool. Default
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) CosineOption {
	return func(c *cosineConfig) { c.workers = n }
}

// WithLogger sets the zerolog.Logger used for the numeric-degeneracy
// warning of SPEC_FULL.md §7 kind 5. Default zerolog.Nop() (silent) —
// cmd/xalign wires in the process logger.
func WithLogger(l zerolog.Logger) CosineOption {
	return func(c *cosineConfig) { c.logger = l }
}

// randomWalkConfig holds the resolved options for RandomWalk.
type randomWalkConfig struct {
	restart         float64
	steps           int
	epsilon         float64
	eigenDenseCutoff int
}

func newRandomWalkConfig(opts ...RandomWalkOption) *randomWalkConfig {
	cfg := &randomWalkConfig{
		restart:          0.05,
		steps:            10000,
		epsilon:          1e-8,
		eigenDenseCutoff: 4096,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// RandomWalkOption configures a RandomWalk call.
type RandomWalkOption func(*randomWalkConfig)

// WithRestart sets the restart probability r (SPEC_FULL.md §4.5). Default
// 0.05; RandomWalk rejects r outside (0,1) with ErrInvalidRestart.
func WithRestart(r float64) RandomWalkOption {
	return func(c *randomWalkConfig) { c.restart = r }
}

// WithSteps sets the power-iteration step cap T. Default 10000;
// RandomWalk rejects values below 1 with ErrInvalidSteps.
func WithSteps(t int) RandomWalkOption {
	return func(c *randomWalkConfig) { c.steps = t }
}

// WithEpsilon sets the L1-residual early-stop threshold. Default 1e-8.
func WithEpsilon(eps float64) RandomWalkOption {
	return func(c *randomWalkConfig) { c.epsilon = eps }
}

// WithEigenDenseCutoff sets the product-graph size at or below which
// RandomWalkEigen's dense eigendecomposition path is used instead of
// power iteration. Default 4096 (product-graph vertices).
func WithEigenDenseCutoff(n int) RandomWalkOption {
	return func(c *randomWalkConfig) { c.eigenDenseCutoff = n }
}
