package cubesolver

import (
	"context"
	"fmt"
	"log/slog"
	"unicode"
)

// faceletImpact is the scaling constant for the local heuristic: no single
// quarter turn moves more than 8 stickers off or onto their goal positions.
const faceletImpact = 8

// estimateCeiling bounds what the oracle may claim; anything outside
// (0, estimateCeiling) is rejected as nonsense.
const estimateCeiling = 50

// Oracle is an optional external estimator of remaining moves. Given
// textual descriptions of the current and goal states it returns free-form
// text; the estimator extracts the first embedded integer. Implementations
// are untrusted and best-effort: any error degrades to the local heuristic.
type Oracle interface {
	Advise(ctx context.Context, state, goal string) (string, error)
}

// Estimator scores cube states for the search engine. It owns a call
// counter and a memoizing cache for oracle estimates, both scoped to a
// single search invocation: a fresh Estimator is built per search.
type Estimator struct {
	goal     *Cube
	goalDesc string
	oracle   Oracle
	every    int
	logger   *slog.Logger

	calls int
	cache map[string]int
}

// NewEstimator creates an estimator targeting goal. oracle may be nil, in
// which case only the local heuristic is used. every is the sampling
// cadence: the oracle is consulted on every Nth estimate call.
func NewEstimator(goal *Cube, oracle Oracle, every int, logger *slog.Logger) *Estimator {
	if every <= 0 {
		every = defaultOracleInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{
		goal:     goal,
		goalDesc: goal.Describe(),
		oracle:   oracle,
		every:    every,
		logger:   logger,
		cache:    make(map[string]int),
	}
}

// Local is the always-available heuristic: the number of mismatched
// facelets divided by the per-move facelet impact, rounded up. It is zero
// exactly at the goal and cheap enough to run on every expansion. It is
// not a proven admissible lower bound, so the search trades optimality
// for speed.
func (e *Estimator) Local(c *Cube) int {
	return (c.Mismatches(e.goal) + faceletImpact - 1) / faceletImpact
}

// Estimate returns the heuristic score for c. Most calls return the local
// estimate; every Nth call with an oracle configured consults the oracle,
// memoizing accepted answers by canonical state key. Oracle failures of
// any kind fall back to the local estimate without caching.
func (e *Estimator) Estimate(ctx context.Context, c *Cube) int {
	e.calls++
	if e.oracle == nil || e.calls%e.every != 0 {
		return e.Local(c)
	}

	key := c.Key()
	if v, ok := e.cache[key]; ok {
		return v
	}

	v, err := e.askOracle(ctx, c)
	if err != nil {
		e.logger.Warn("oracle estimate failed, using local heuristic", "error", err)
		return e.Local(c)
	}

	e.cache[key] = v
	return v
}

// askOracle queries the oracle and validates its answer.
func (e *Estimator) askOracle(ctx context.Context, c *Cube) (int, error) {
	text, err := e.oracle.Advise(ctx, c.Describe(), e.goalDesc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	v, ok := firstInt(text)
	if !ok {
		return 0, ErrNoEstimate
	}
	if v <= 0 || v >= estimateCeiling {
		return 0, fmt.Errorf("%w: %d", ErrEstimateRange, v)
	}
	return v, nil
}

// firstInt extracts the first run of decimal digits from s.
func firstInt(s string) (int, bool) {
	n := 0
	found := false
	for _, r := range s {
		if unicode.IsDigit(r) {
			n = n*10 + int(r-'0')
			found = true
			continue
		}
		if found {
			break
		}
	}
	return n, found
}
