package cubesolver

import (
	"container/heap"
	"context"
	"time"
)

// Status reports where a search currently stands.
type Status int

const (
	StatusRunning   Status = iota // more nodes to expand
	StatusSolved                  // goal reached, Result holds the solution
	StatusExhausted               // frontier emptied without reaching the goal
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSolved:
		return "solved"
	case StatusExhausted:
		return "exhausted"
	default:
		return "?"
	}
}

// Result is the outcome of a search.
type Result struct {
	Moves          []Move        // solution sequence; empty if no solution found
	StatesExplored int           // distinct states marked visited
	Duration       time.Duration // wall-clock time since the search started
}

// Solution returns the solution in space-separated notation.
func (r Result) Solution() string {
	return FormatMoves(r.Moves)
}

// node is an immutable search record: a state, its accumulated path cost,
// its heuristic estimate, and the moves taken to reach it from the start.
type node struct {
	cube *Cube
	g    int // moves from start
	h    int // estimated moves to goal
	f    int // g + h
	path []Move
}

// frontierEntry pairs a node with its insertion sequence number, so ties
// on f resolve to the first node discovered (deterministic expansion).
type frontierEntry struct {
	n   *node
	seq int
}

// frontier is a min-heap on (f, seq).
type frontier []*frontierEntry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].n.f != q[j].n.f {
		return q[i].n.f < q[j].n.f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*frontierEntry)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

// Search is a best-first (A*) search over cube states, expressed as a
// resumable state machine: each Step call pops and expands exactly one
// node, so callers can drive the search from a timer tick, an event loop,
// or a plain for loop without blocking for the whole solve.
//
// The frontier, visited set, heuristic cache and oracle call counter all
// belong to one Search value; concurrent independent searches never share
// state. Abandoning a Search (by not calling Step again) leaves no
// background work behind.
type Search struct {
	goal    *Cube
	est     *Estimator
	open    frontier
	visited map[string]struct{}
	seq     int
	status  Status
	result  Result
	started time.Time
}

// NewSearch prepares a search from start to the solved state.
func NewSearch(ctx context.Context, start *Cube, opts ...Option) *Search {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	goal := Solved()
	s := &Search{
		goal:    goal,
		est:     NewEstimator(goal, cfg.oracle, cfg.oracleInterval, cfg.logger),
		visited: make(map[string]struct{}),
		status:  StatusRunning,
		started: time.Now(),
	}

	h := s.est.Estimate(ctx, start)
	s.push(&node{cube: start.Clone(), g: 0, h: h, f: h, path: nil})
	return s
}

func (s *Search) push(n *node) {
	heap.Push(&s.open, &frontierEntry{n: n, seq: s.seq})
	s.seq++
}

// Step advances the search by one node expansion and returns the new
// status. Calling Step after the search has finished is a no-op.
//
// Duplicate frontier entries (states discovered along several paths) are
// pruned lazily here, at pop time; the visited set only ever grows, so
// each distinct state is expanded at most once.
func (s *Search) Step(ctx context.Context) Status {
	if s.status != StatusRunning {
		return s.status
	}

	for {
		if s.open.Len() == 0 {
			s.finish(StatusExhausted, nil)
			return s.status
		}

		e := heap.Pop(&s.open).(*frontierEntry)
		key := e.n.cube.Key()
		if _, seen := s.visited[key]; seen {
			continue
		}
		s.visited[key] = struct{}{}

		if e.n.cube.Equal(s.goal) {
			s.finish(StatusSolved, e.n.path)
			return s.status
		}

		for _, m := range AllMoves {
			next := e.n.cube.Apply(m)
			if _, seen := s.visited[next.Key()]; seen {
				continue
			}
			g := e.n.g + 1
			h := s.est.Estimate(ctx, next)
			path := make([]Move, len(e.n.path)+1)
			copy(path, e.n.path)
			path[len(path)-1] = m
			s.push(&node{cube: next, g: g, h: h, f: g + h, path: path})
		}
		return s.status
	}
}

func (s *Search) finish(status Status, moves []Move) {
	s.status = status
	s.result = Result{
		Moves:          moves,
		StatesExplored: len(s.visited),
		Duration:       time.Since(s.started),
	}
	s.open = nil
}

// Status returns the current search status.
func (s *Search) Status() Status {
	return s.status
}

// Result returns the search outcome. Before the search finishes it holds
// a snapshot of the progress so far with an empty move list.
func (s *Search) Result() Result {
	if s.status != StatusRunning {
		return s.result
	}
	return Result{
		StatesExplored: len(s.visited),
		Duration:       time.Since(s.started),
	}
}

// Visited returns the number of states expanded so far.
func (s *Search) Visited() int {
	return len(s.visited)
}

// FrontierLen returns the number of queued (not yet expanded) entries.
func (s *Search) FrontierLen() int {
	return s.open.Len()
}

// Run drives the search to completion, checking ctx between expansions.
// On cancellation it returns the progress snapshot and the context error;
// search exhaustion is not an error, just an empty move list.
func (s *Search) Run(ctx context.Context) (Result, error) {
	for s.Step(ctx) == StatusRunning {
		select {
		case <-ctx.Done():
			return s.Result(), ctx.Err()
		default:
		}
	}
	return s.result, nil
}

// Solve is the one-call convenience wrapper: build a search for start and
// run it to completion.
func Solve(ctx context.Context, start *Cube, opts ...Option) (Result, error) {
	return NewSearch(ctx, start, opts...).Run(ctx)
}
