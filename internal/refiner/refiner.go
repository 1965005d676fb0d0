// Package refiner implements Refiner (spec.md §4.9): an iterative
// rate/adjust loop that nudges a puzzle's clue count toward a target
// difficulty class without disturbing solution uniqueness.
package refiner

import (
	"math/rand/v2"

	"github.com/andrew867/sudokugen/internal/analyzer"
	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/rating"
	"github.com/andrew867/sudokugen/internal/solver"
	"github.com/andrew867/sudokugen/pkg/constants"
)

const maxIterations = constants.MaxRefinementIterations

// Result is what refineToDifficulty reports (spec.md §4.9).
type Result struct {
	Puzzle     *core.Board
	Success    bool
	Iterations int
	Rating     core.Rating
}

// Refiner bundles the collaborators refineToDifficulty needs.
type Refiner struct {
	rater    *rating.Rater
	solver   *solver.Solver
	analyzer *analyzer.Analyzer
}

// New returns a Refiner over a fresh rater, solver, and analyzer.
func New() *Refiner {
	return &Refiner{rater: rating.NewRater(), solver: solver.New(), analyzer: analyzer.New()}
}

// RefineToDifficulty runs the loop of spec.md §4.9 against puzzle, whose
// completed form is solution, trying to land rating.CompositeScore
// inside target's score range. useSymmetry mirrors every accepted
// add/remove through its rotational twin, when that twin move also
// preserves uniqueness.
func (rf *Refiner) RefineToDifficulty(puzzle, solution *core.Board, target core.Class, rng *rand.Rand, useSymmetry bool) Result {
	current := puzzle.Clone()
	var lastRating core.Rating

	iter := 0
	for ; iter < maxIterations; iter++ {
		lastRating = rf.rater.RateWithTarget(current, target)
		if lastRating.IsInTargetRange {
			return Result{Puzzle: current, Success: true, Iterations: iter, Rating: lastRating}
		}

		var next *core.Board
		cmp := rf.rater.Targets().Compare(lastRating.CompositeScore, target)
		switch cmp {
		case rating.TooEasy:
			next = rf.increaseDifficulty(current, solution, rng, useSymmetry)
		case rating.TooHard:
			next = rf.simplifyPuzzle(current, solution, rng, useSymmetry)
		default:
			next = current
		}

		if next == nil || boardsEqual(next, current) {
			break
		}
		current = next
	}

	final := rf.rater.RateWithTarget(current, target)
	return Result{Puzzle: current, Success: final.IsInTargetRange, Iterations: iter, Rating: final}
}

func boardsEqual(a, b *core.Board) bool {
	if a == b {
		return true
	}
	for i, v := range a.Cells {
		if b.Cells[i] != v {
			return false
		}
	}
	return true
}

// increaseDifficulty removes a clue to push the rating up (spec.md §4.9
// step 2): first from an over-constrained unit, then the least-important
// clue, then whichever remaining clue's removal is probed to be optimal.
func (rf *Refiner) increaseDifficulty(puzzle, solution *core.Board, rng *rand.Rand, useSymmetry bool) *core.Board {
	dist := rf.analyzer.Distribution(puzzle)
	if idx, ok := rf.pickFromUnits(puzzle, dist.OverConstrained); ok {
		if next := rf.tryRemove(puzzle, idx, useSymmetry); next != nil {
			return next
		}
	}

	ranked := rf.analyzer.CluesByImportance(puzzle, solution)
	for _, c := range ranked {
		if next := rf.tryRemove(puzzle, c.Index, useSymmetry); next != nil {
			return next
		}
	}

	return rf.bestRemovalByProbe(puzzle, useSymmetry)
}

// simplifyPuzzle adds a clue back to push the rating down (spec.md §4.9
// step 3): first into an under-constrained unit, otherwise whichever
// empty cell's restoration reduces the composite score the most.
func (rf *Refiner) simplifyPuzzle(puzzle, solution *core.Board, rng *rand.Rand, useSymmetry bool) *core.Board {
	dist := rf.analyzer.Distribution(puzzle)
	if idx, ok := rf.pickEmptyFromUnits(puzzle, dist.UnderConstrained); ok {
		return rf.addClue(puzzle, solution, idx, solution.GetAt(idx), useSymmetry)
	}

	additions := rf.analyzer.CandidateClueAdditions(puzzle, solution)
	if len(additions) == 0 {
		return nil
	}
	best := additions[0]
	return rf.addClue(puzzle, solution, best.Index, best.Digit, useSymmetry)
}

func (rf *Refiner) pickFromUnits(b *core.Board, units []core.UnitRef) (int, bool) {
	for _, u := range units {
		for _, idx := range cellsOf(b, u) {
			if b.GetAt(idx) != 0 {
				return idx, true
			}
		}
	}
	return 0, false
}

func (rf *Refiner) pickEmptyFromUnits(b *core.Board, units []core.UnitRef) (int, bool) {
	for _, u := range units {
		for _, idx := range cellsOf(b, u) {
			if b.GetAt(idx) == 0 {
				return idx, true
			}
		}
	}
	return 0, false
}

func cellsOf(b *core.Board, u core.UnitRef) []int {
	switch u.Kind {
	case core.UnitRow:
		return b.RowCells(u.Index)
	case core.UnitCol:
		return b.ColCells(u.Index)
	default:
		return b.BoxCells(u.Index)
	}
}

// tryRemove blanks idx if uniqueness survives, mirroring through the
// rotational twin under the symmetry option (only if both removals
// preserve uniqueness). Returns nil if the removal cannot be accepted.
func (rf *Refiner) tryRemove(puzzle *core.Board, idx int, useSymmetry bool) *core.Board {
	digit := puzzle.GetAt(idx)
	if digit == 0 {
		return nil
	}
	trial := puzzle.Clone()
	trial.SetAt(idx, 0)
	if !rf.solver.HasUniqueSolution(trial) {
		return nil
	}

	if useSymmetry {
		twin := twinIndex(puzzle, idx)
		if twin != idx {
			twinDigit := trial.GetAt(twin)
			if twinDigit != 0 {
				withTwin := trial.Clone()
				withTwin.SetAt(twin, 0)
				if rf.solver.HasUniqueSolution(withTwin) {
					return withTwin
				}
				return nil
			}
		}
	}
	return trial
}

// addClue restores digit at idx, mirroring through the rotational twin
// under the symmetry option (the twin gets its digit from solution).
func (rf *Refiner) addClue(puzzle, solution *core.Board, idx, digit int, useSymmetry bool) *core.Board {
	if digit == 0 {
		return nil
	}
	trial := puzzle.Clone()
	trial.SetAt(idx, digit)

	if useSymmetry {
		twin := twinIndex(puzzle, idx)
		if twin != idx && trial.GetAt(twin) == 0 {
			trial.SetAt(twin, solution.GetAt(twin))
		}
	}
	return trial
}

func twinIndex(b *core.Board, idx int) int {
	row, col := idx/b.Size, idx%b.Size
	return (b.Size-1-row)*b.Size + (b.Size - 1 - col)
}

// bestRemovalByProbe exhaustively tries removing every remaining clue
// and returns the board after whichever single removal (a) preserves
// uniqueness and (b) yields the highest composite score, or nil if no
// clue can be removed.
func (rf *Refiner) bestRemovalByProbe(puzzle *core.Board, useSymmetry bool) *core.Board {
	var best *core.Board
	var bestScore float64

	for _, clue := range puzzle.Clues() {
		next := rf.tryRemove(puzzle, clue.Index, useSymmetry)
		if next == nil {
			continue
		}
		r := rf.rater.Rate(next)
		if best == nil || r.CompositeScore > bestScore {
			best = next
			bestScore = r.CompositeScore
		}
	}
	return best
}
