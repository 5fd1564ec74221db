package cubesolver

import (
	"context"
	"errors"
	"testing"
)

// fakeOracle replays scripted answers and counts calls.
type fakeOracle struct {
	replies []string
	err     error
	calls   int
}

func (f *fakeOracle) Advise(ctx context.Context, state, goal string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.replies[(f.calls-1)%len(f.replies)], nil
}

func newTestEstimator(o Oracle, every int) *Estimator {
	return NewEstimator(Solved(), o, every, nil)
}

func TestLocalEstimateZeroAtGoal(t *testing.T) {
	e := newTestEstimator(nil, 15)
	if got := e.Local(Solved()); got != 0 {
		t.Errorf("Local(goal) = %d, want 0", got)
	}
}

func TestLocalEstimateSingleQuarterTurn(t *testing.T) {
	// A single R on a solved cube displaces the 12 side-strip stickers;
	// the turned face stays uniform. ceil(12/8) = 2.
	e := newTestEstimator(nil, 15)
	if got := e.Local(Solved().Apply(R)); got != 2 {
		t.Errorf("Local(solved+R) = %d, want 2", got)
	}
}

func TestLocalEstimateNonNegative(t *testing.T) {
	e := newTestEstimator(nil, 15)
	for i := 0; i < 20; i++ {
		c, _ := Scramble(i)
		if got := e.Local(c); got < 0 {
			t.Fatalf("Local returned negative estimate %d", got)
		}
	}
}

func TestEstimateWithoutOracleIsLocal(t *testing.T) {
	e := newTestEstimator(nil, 1)
	c := Solved().Apply(R)
	for i := 0; i < 30; i++ {
		if got := e.Estimate(context.Background(), c); got != e.Local(c) {
			t.Fatalf("Estimate without oracle should equal Local, got %d", got)
		}
	}
}

func TestEstimateConsultsOracleOnCadence(t *testing.T) {
	o := &fakeOracle{replies: []string{"about 7 moves"}}
	e := newTestEstimator(o, 5)

	states := make([]*Cube, 10)
	for i := range states {
		states[i] = Solved().ApplyMoves([]Move{R, U}).Apply(AllMoves[i])
	}

	for i, c := range states {
		e.Estimate(context.Background(), c)
		wantCalls := (i + 1) / 5
		if o.calls != wantCalls {
			t.Fatalf("after %d estimates oracle was called %d times, want %d", i+1, o.calls, wantCalls)
		}
	}
}

func TestEstimateParsesFirstInteger(t *testing.T) {
	o := &fakeOracle{replies: []string{"I'd say roughly 12 to 14 moves."}}
	e := newTestEstimator(o, 1)

	if got := e.Estimate(context.Background(), Solved().Apply(R)); got != 12 {
		t.Errorf("Estimate = %d, want 12 (first integer in response)", got)
	}
}

func TestEstimateCachesByStateKey(t *testing.T) {
	o := &fakeOracle{replies: []string{"9"}}
	e := newTestEstimator(o, 1)
	c := Solved().ApplyMoves([]Move{R, U2})

	for i := 0; i < 5; i++ {
		if got := e.Estimate(context.Background(), c); got != 9 {
			t.Fatalf("Estimate = %d, want cached oracle value 9", got)
		}
	}
	if o.calls != 1 {
		t.Errorf("oracle called %d times for one state, want 1 (cache hit)", o.calls)
	}
}

func TestEstimateFallsBackOnBadResponses(t *testing.T) {
	c := Solved().Apply(R)
	local := newTestEstimator(nil, 15).Local(c)

	cases := []struct {
		name   string
		oracle *fakeOracle
	}{
		{"no integer", &fakeOracle{replies: []string{"no idea, sorry"}}},
		{"zero", &fakeOracle{replies: []string{"0"}}},
		{"too large", &fakeOracle{replies: []string{"999"}}},
		{"error", &fakeOracle{err: errors.New("network down")}},
	}

	for _, tc := range cases {
		e := newTestEstimator(tc.oracle, 1)
		if got := e.Estimate(context.Background(), c); got != local {
			t.Errorf("%s: Estimate = %d, want local fallback %d", tc.name, got, local)
		}
		// Failures must not be cached: the next call should retry.
		e.Estimate(context.Background(), c)
		if tc.oracle.calls != 2 {
			t.Errorf("%s: failed estimate was cached (oracle calls = %d)", tc.name, tc.oracle.calls)
		}
	}
}

func TestFirstInt(t *testing.T) {
	cases := []struct {
		in    string
		want  int
		found bool
	}{
		{"7", 7, true},
		{"around 12 moves", 12, true},
		{"3 or 4", 3, true},
		{"none", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, found := firstInt(tc.in)
		if got != tc.want || found != tc.found {
			t.Errorf("firstInt(%q) = (%d, %v), want (%d, %v)", tc.in, got, found, tc.want, tc.found)
		}
	}
}
