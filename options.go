package geministore

import "time"

// DefaultChainWindow is the compensation window g used when no
// WithChainWindow option is given.
const DefaultChainWindow = 1

// config holds the configurable parameters applied by NewMatrix and
// NewMatrixWithDim before construction finishes. Grounded on
// builder/config.go's newBuilderConfig pattern: defaults first, then
// options applied in order, later options win.
type config struct {
	dim                 int
	memoryBudgetBytes   int
	chainWindow         int
	expirationThreshold time.Duration
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		chainWindow: DefaultChainWindow,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option customizes construction of a Matrix.
type Option func(*config)

// WithDim sets the matrix side N directly, overriding any memory budget.
func WithDim(n int) Option {
	return func(c *config) { c.dim = n }
}

// WithMemoryBudget sets the memory budget in bytes that N is derived
// from: N = floor(sqrt(budget / sizeof(Bucket))).
func WithMemoryBudget(bytes int) Option {
	return func(c *config) { c.memoryBudgetBytes = bytes }
}

// WithChainWindow sets the compensation window g. Negative values are
// clamped to 0 (no compensation).
func WithChainWindow(g int) Option {
	return func(c *config) {
		if g < 0 {
			g = 0
		}
		c.chainWindow = g
	}
}

// WithExpirationThreshold records a default duration from which a caller
// can compute an eviction horizon Te against its own clock; the Matrix
// returns it from ExpirationThreshold. Nothing in this module reads it to
// compute Te: the core never does, and internal/bench does not expire
// edges during a replay.
func WithExpirationThreshold(d time.Duration) Option {
	return func(c *config) { c.expirationThreshold = d }
}
