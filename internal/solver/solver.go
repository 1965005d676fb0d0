// Package solver implements the DPLL-with-propagation CSP solver
// (spec.md §4.3): unit propagation to a fixpoint, then most-constrained-
// cell branching with an in-place assign/undo discipline so recursion
// never clones the board (spec.md §9 design note).
package solver

import (
	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/pkg/constants"
)

// Solver runs the DPLL search over a mutable working board. A Solver
// value is reentrant and single-threaded: each call gets its own
// ConstraintMasks and metrics, and nothing survives across calls
// (spec.md §5).
type Solver struct{}

// New returns a ready-to-use Solver.
func New() *Solver {
	return &Solver{}
}

// Solve returns the first solution found, or a no-solution result.
// Metrics are accumulated and discarded by this variant; use
// SolveWithMetrics to keep them.
func (s *Solver) Solve(puzzle *core.Board) core.SolverResult {
	res, _ := s.SolveWithMetrics(puzzle)
	return res
}

// SolveWithMetrics is Solve's metrics-preserving variant.
func (s *Solver) SolveWithMetrics(puzzle *core.Board) (core.SolverResult, core.SolverMetrics) {
	return s.CountSolutionsWithMetrics(puzzle, 1)
}

// CountSolutions depth-first enumerates solutions, stopping once limit is
// hit. Reports SolutionCount (capped at limit) and the first solution
// found, if any.
func (s *Solver) CountSolutions(puzzle *core.Board, limit int) core.SolverResult {
	res, _ := s.CountSolutionsWithMetrics(puzzle, limit)
	return res
}

// CountSolutionsWithMetrics is CountSolutions' metrics-preserving variant.
func (s *Solver) CountSolutionsWithMetrics(puzzle *core.Board, limit int) (core.SolverResult, core.SolverMetrics) {
	w := newSearch(puzzle, limit)
	w.run()

	res := core.SolverResult{
		Solution:      w.firstSolution,
		SolutionCount: w.solutionCount,
		Metrics:       w.metrics,
	}
	res.DifficultyScore = w.metrics.CompositeScore()
	return res, w.metrics
}

// HasUniqueSolution reports whether puzzle has exactly one solution
// (spec.md §4.3: countSolutions(puzzle, 2).solutionCount == 1).
func (s *Solver) HasUniqueSolution(puzzle *core.Board) bool {
	return s.CountSolutions(puzzle, constants.SolutionCountLimit).SolutionCount == 1
}
