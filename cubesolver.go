// Package cubesolver models a 3x3 Rubik's cube as a discrete state space
// and searches it for a short solution with heuristic-guided (A*)
// best-first search.
//
// # Features
//
//   - Facelet-level cube model with pure, table-driven move application
//   - 12-move vocabulary: U, D, R, L quarter and half turns
//   - Resumable step-by-step A* search with visited-state deduplication
//   - Optional external heuristic oracle, sampled and cached per search
//   - Random scramble generation with reproducible sequences
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	start, scramble := cubesolver.Scramble(8)
//	fmt.Println("Scramble:", cubesolver.FormatMoves(scramble))
//
//	result, err := cubesolver.Solve(context.Background(), start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", result.Solution())
//	fmt.Println("States explored:", result.StatesExplored)
//
// # Stepwise Searches
//
// For long solves, drive the search incrementally so a UI or event loop
// stays responsive:
//
//	search := cubesolver.NewSearch(ctx, start)
//	for search.Step(ctx) == cubesolver.StatusRunning {
//	    // yield, update a progress display, check a deadline...
//	}
//	result := search.Result()
//
// # Move Vocabulary
//
// Only Up, Down, Right and Left face turns are supported; Front/Back and
// slice/wide moves are deliberately excluded. Scrambles produced by this
// package stay inside the subgroup those 12 moves generate, so every
// generated scramble is solvable by the solver. Unrecognized tokens in
// parsed move sequences are skipped rather than rejected.
//
// # Heuristic Oracle
//
// The search can consult an external estimator implementing the Oracle
// interface. The oracle is best-effort: malformed, out-of-range or failed
// responses silently fall back to the built-in facelet-distance heuristic
// and never abort a search. Without an oracle the solver behaves
// identically except for expansion order.
package cubesolver
