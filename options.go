package cubesolver

import "log/slog"

// defaultOracleInterval is the sampling cadence for oracle-backed
// estimates: one call in every 15 heuristic evaluations.
const defaultOracleInterval = 15

// Option configures a search.
type Option func(*config)

type config struct {
	oracle         Oracle
	oracleInterval int
	logger         *slog.Logger
}

func defaultConfig() *config {
	return &config{
		oracleInterval: defaultOracleInterval,
		logger:         slog.Default(),
	}
}

// WithOracle sets the external heuristic oracle. The oracle is optional:
// without one the search runs entirely on the local heuristic, which
// changes only expansion order, never correctness.
func WithOracle(o Oracle) Option {
	return func(c *config) {
		c.oracle = o
	}
}

// WithOracleInterval sets how often the oracle is consulted: once per n
// heuristic evaluations. Values below 1 keep the default.
func WithOracleInterval(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.oracleInterval = n
		}
	}
}

// WithLogger sets the logger used for oracle failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
