// Package generator implements Generator (spec.md §4.8): seed a complete
// grid, carve it down to a target clue count while preserving
// uniqueness, analyze the result, and retry the whole pipeline on
// failure.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/rating"
	"github.com/andrew867/sudokugen/internal/solver"
	"github.com/andrew867/sudokugen/internal/symmetry"
	"github.com/andrew867/sudokugen/pkg/constants"
)

const (
	maxFullGridAttempts  = constants.MaxFullGridAttempts
	maxGenerationRetries = constants.MaxGenerationRetries
	minCluesClassic9     = constants.MinCluesClassic9
)

// clueFraction is the fraction of S² cells left as clues per difficulty
// class (spec.md §4.8 step 2).
var clueFraction = [...]float64{
	core.Easy:   0.49,
	core.Medium: 0.39,
	core.Hard:   0.32,
	core.Expert: 0.25,
	core.Evil:   0.21,
}

// Generator produces GeneratedPuzzle values. A zero-value Generator is
// not usable; construct with New or NewWithSeed.
type Generator struct {
	rng     *rand.Rand
	seed    int64
	hasSeed bool
	solver  *solver.Solver
	rater   *rating.Rater
}

// New returns a Generator seeded from a time-derived, non-reproducible
// source.
func New() *Generator {
	return newGenerator(uint64(time.Now().UnixNano()), false, 0)
}

// NewWithSeed returns a Generator whose output is fully determined by
// seed: the same seed with the same target, variant, and shape must
// produce the same puzzle (spec.md §5).
func NewWithSeed(seed int64) *Generator {
	return newGenerator(uint64(seed), true, seed)
}

func newGenerator(seedBits uint64, hasSeed bool, seed int64) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewPCG(seedBits, seedBits^0x9e3779b97f4a7c15)),
		seed:    seed,
		hasSeed: hasSeed,
		solver:  solver.New(),
		rater:   rating.NewRater(),
	}
}

// Generate runs the full pipeline of spec.md §4.8 for a board of the
// given geometry and difficulty class/variant. When useRefinement is
// true, the pipeline stops after analysis with whatever clue count
// emerged from carving, leaving the refiner (internal/refiner) to
// adjust it further.
func (g *Generator) Generate(difficulty core.Class, variant core.Variant, size, boxRows, boxCols int, useRefinement bool) (*core.GeneratedPuzzle, error) {
	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		puzzle, err := g.attempt(difficulty, variant, size, boxRows, boxCols, useRefinement)
		if err == nil {
			return puzzle, nil
		}
	}
	return nil, &core.GenerationFailedError{Attempts: maxGenerationRetries}
}

func (g *Generator) attempt(difficulty core.Class, variant core.Variant, size, boxRows, boxCols int, useRefinement bool) (*core.GeneratedPuzzle, error) {
	solution, err := g.seedSolution(size, boxRows, boxCols)
	if err != nil {
		return nil, err
	}

	target := g.targetClueCount(difficulty, size)
	puzzle := g.carve(solution, target)

	if puzzle.HasUnitConflicts() {
		return nil, core.ErrGenerationFailed
	}

	rated := g.rater.RateWithTarget(puzzle, difficulty)
	sym := symmetry.Detect(puzzle)

	gp := &core.GeneratedPuzzle{
		ID:              uuid.NewString(),
		Puzzle:          puzzle,
		Solution:        solution,
		Difficulty:      difficulty,
		Variant:         variant,
		GeneratedAt:     time.Now(),
		SolverAlgorithm: "dpll-propagation",
		Rating:          rated,
		Symmetry:        sym,
	}
	if g.hasSeed {
		gp.Seed = g.seed
		gp.SeedSet = true
	}
	if useRefinement {
		gp.RefinementIterations = 0 // caller invokes internal/refiner next
	}
	return gp, nil
}

// seedSolution fills diagonal boxes with independent random permutations
// (they share no unit so no cross-box conflict is possible), then lets
// the solver complete the rest into a full valid grid (spec.md §4.8
// step 1).
func (g *Generator) seedSolution(size, boxRows, boxCols int) (*core.Board, error) {
	var lastErr error
	for attempt := 0; attempt < maxFullGridAttempts; attempt++ {
		b, err := core.NewBoard(size, boxRows, boxCols)
		if err != nil {
			return nil, err
		}
		g.fillDiagonalBoxes(b)

		res := g.solver.Solve(b)
		if !res.NoSolution() {
			return res.Solution, nil
		}
		lastErr = core.ErrNoSolution
	}
	if lastErr == nil {
		lastErr = core.ErrNoSolution
	}
	return nil, lastErr
}

func (g *Generator) fillDiagonalBoxes(b *core.Board) {
	numBoxRows := b.Size / b.BoxRows
	numBoxCols := b.Size / b.BoxCols
	diagCount := numBoxRows
	if numBoxCols < diagCount {
		diagCount = numBoxCols
	}
	for boxIdx := 0; boxIdx < diagCount; boxIdx++ {
		// Diagonal boxes: box-row index == box-col index, so only these
		// share no unit with one another and can be filled independently.
		diagBox := boxIdx*numBoxCols + boxIdx
		cells := b.BoxCells(diagBox)
		digits := make([]int, b.Size)
		for i := range digits {
			digits[i] = i + 1
		}
		g.rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
		for i, idx := range cells {
			b.SetAt(idx, digits[i])
		}
	}
}

// targetClueCount applies spec.md §4.8 step 2's difficulty profile.
func (g *Generator) targetClueCount(difficulty core.Class, size int) int {
	frac := clueFraction[difficulty]
	target := int(frac * float64(size*size))
	if size == 9 && target < minCluesClassic9 {
		target = minCluesClassic9
	}
	return target
}

// carve iterates cell positions in a shuffled order, tentatively
// blanking each and asking the solver whether uniqueness survives
// (spec.md §4.8 step 3).
func (g *Generator) carve(solution *core.Board, target int) *core.Board {
	puzzle := solution.Clone()
	positions := make([]int, len(puzzle.Cells))
	for i := range positions {
		positions[i] = i
	}
	g.rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	for _, pos := range positions {
		if puzzle.ClueCount() <= target {
			break
		}
		digit := puzzle.GetAt(pos)
		if digit == 0 {
			continue
		}
		puzzle.SetAt(pos, 0)
		if !g.solver.HasUniqueSolution(puzzle) {
			puzzle.SetAt(pos, digit)
		}
	}
	return puzzle
}
