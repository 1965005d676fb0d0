// Package analyzer implements ClueAnalyzer (spec.md §4.7): per-region
// clue distribution, per-clue importance, and a rotational-symmetry
// pairing helper.
package analyzer

import (
	"math"

	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/rating"
	"github.com/andrew867/sudokugen/internal/solver"
)

// Analyzer bundles the solver and rater the importance computation needs
// (importance requires re-rating the puzzle with a clue removed).
type Analyzer struct {
	solver *solver.Solver
	rater  *rating.Rater
}

// New returns an Analyzer over a fresh solver and rater.
func New() *Analyzer {
	return &Analyzer{solver: solver.New(), rater: rating.NewRater()}
}

// Distribution computes the ClueDistribution for board: per-unit clue
// counts, their mean and variance, and the units flagged over/under-
// constrained (more than one standard deviation from the mean).
func (a *Analyzer) Distribution(b *core.Board) core.ClueDistribution {
	rowCounts := make([]int, b.Size)
	colCounts := make([]int, b.Size)
	boxCounts := make([]int, b.Size)

	for idx, v := range b.Cells {
		if v == 0 {
			continue
		}
		row, col := idx/b.Size, idx%b.Size
		box := b.BoxIndex(row, col)
		rowCounts[row]++
		colCounts[col]++
		boxCounts[box]++
	}

	all := make([]int, 0, b.Size*3)
	all = append(all, rowCounts...)
	all = append(all, colCounts...)
	all = append(all, boxCounts...)

	mean, variance := meanVariance(all)
	stddev := math.Sqrt(variance)

	dist := core.ClueDistribution{
		RowCounts: rowCounts,
		ColCounts: colCounts,
		BoxCounts: boxCounts,
		Average:   mean,
		Variance:  variance,
	}

	classify := func(kind core.UnitKind, counts []int) {
		for i, c := range counts {
			delta := float64(c) - mean
			switch {
			case delta > stddev:
				dist.OverConstrained = append(dist.OverConstrained, core.UnitRef{Kind: kind, Index: i})
			case delta < -stddev:
				dist.UnderConstrained = append(dist.UnderConstrained, core.UnitRef{Kind: kind, Index: i})
			}
		}
	}
	classify(core.UnitRow, rowCounts)
	classify(core.UnitCol, colCounts)
	classify(core.UnitBox, boxCounts)

	return dist
}

func meanVariance(xs []int) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	mean := float64(sum) / float64(len(xs))
	var sqDiff float64
	for _, x := range xs {
		d := float64(x) - mean
		sqDiff += d * d
	}
	return mean, sqDiff / float64(len(xs))
}

// Importance computes a value in [0,1] for the clue at (row, col),
// assumed present in puzzle with solution as its completed grid (spec.md
// §4.7): 1.0 if removing it destroys uniqueness, otherwise a normalized
// difficulty-delta plus a +0.2 bonus if the cell sits in any
// under-constrained unit.
func (a *Analyzer) Importance(puzzle, solution *core.Board, row, col int) float64 {
	idx := row*puzzle.Size + col
	digit := puzzle.GetAt(idx)
	if digit == 0 {
		return 0
	}

	before := a.rater.Rate(puzzle)

	trial := puzzle.Clone()
	trial.SetAt(idx, 0)
	if !a.solver.HasUniqueSolution(trial) {
		return 1.0
	}

	after := a.rater.Rate(trial)
	delta := after.CompositeScore - before.CompositeScore
	normalized := normalizeDelta(delta)

	if a.inUnderConstrainedUnit(puzzle, row, col) {
		normalized += 0.2
	}
	if normalized > 1 {
		normalized = 1
	}
	if normalized < 0 {
		normalized = 0
	}
	return normalized
}

// normalizeDelta squashes an unbounded difficulty-score delta into
// [0,1] via a simple saturating ramp: a removal that barely changes
// difficulty scores near 0, one that changes it a lot approaches 1.
func normalizeDelta(delta float64) float64 {
	if delta <= 0 {
		return 0
	}
	const scale = 20.0 // empirically: most single-clue deltas land under ~20 score points
	v := delta / scale
	if v > 1 {
		v = 1
	}
	return v
}

func (a *Analyzer) inUnderConstrainedUnit(b *core.Board, row, col int) bool {
	dist := a.Distribution(b)
	box := b.BoxIndex(row, col)
	for _, u := range dist.UnderConstrained {
		switch u.Kind {
		case core.UnitRow:
			if u.Index == row {
				return true
			}
		case core.UnitCol:
			if u.Index == col {
				return true
			}
		case core.UnitBox:
			if u.Index == box {
				return true
			}
		}
	}
	return false
}

// CluesByImportance returns every clue position, ascending by importance.
func (a *Analyzer) CluesByImportance(puzzle, solution *core.Board) []core.Clue {
	clues := puzzle.Clues()
	type scored struct {
		clue  core.Clue
		score float64
	}
	scoredClues := make([]scored, len(clues))
	for i, c := range clues {
		row, col := c.Index/puzzle.Size, c.Index%puzzle.Size
		scoredClues[i] = scored{clue: c, score: a.Importance(puzzle, solution, row, col)}
	}
	sortByScoreAsc(scoredClues)
	out := make([]core.Clue, len(scoredClues))
	for i, sc := range scoredClues {
		out[i] = sc.clue
	}
	return out
}

func sortByScoreAsc(xs []struct {
	clue  core.Clue
	score float64
}) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j].score < xs[j-1].score; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// CandidateClueAdditions returns every empty cell, descending by the
// difficulty reduction its solution value would cause if added back.
func (a *Analyzer) CandidateClueAdditions(puzzle, solution *core.Board) []core.Clue {
	empties := puzzle.EmptyCells()
	before := a.rater.Rate(puzzle)

	type scored struct {
		clue      core.Clue
		reduction float64
	}
	scoredEmpties := make([]scored, 0, len(empties))
	for _, idx := range empties {
		digit := solution.GetAt(idx)
		trial := puzzle.Clone()
		trial.SetAt(idx, digit)
		after := a.rater.Rate(trial)
		scoredEmpties = append(scoredEmpties, scored{
			clue:      core.Clue{Index: idx, Digit: digit},
			reduction: before.CompositeScore - after.CompositeScore,
		})
	}

	for i := 1; i < len(scoredEmpties); i++ {
		for j := i; j > 0 && scoredEmpties[j].reduction > scoredEmpties[j-1].reduction; j-- {
			scoredEmpties[j], scoredEmpties[j-1] = scoredEmpties[j-1], scoredEmpties[j]
		}
	}

	out := make([]core.Clue, len(scoredEmpties))
	for i, sc := range scoredEmpties {
		out[i] = sc.clue
	}
	return out
}

// RotationalSymmetryPairs pairs every cell (r,c) with its rotational twin
// (S-1-r, S-1-c), emitting each pair exactly once (spec.md §4.7).
func RotationalSymmetryPairs(size int) [][2]int {
	var pairs [][2]int
	seen := make(map[int]bool)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			idx := r*size + c
			if seen[idx] {
				continue
			}
			twinR, twinC := size-1-r, size-1-c
			twinIdx := twinR*size + twinC
			seen[idx] = true
			seen[twinIdx] = true
			pairs = append(pairs, [2]int{idx, twinIdx})
		}
	}
	return pairs
}
