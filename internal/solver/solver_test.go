package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew867/sudokugen/internal/core"
)

func mustBoard(t *testing.T, s string) *core.Board {
	t.Helper()
	b, offenses, err := core.ParseBoard(9, 3, 3, s)
	require.NoError(t, err)
	require.Nil(t, offenses)
	return b
}

// TestSolveUniquePuzzle is spec.md §8 scenario 1.
func TestSolveUniquePuzzle(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	want := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

	s := New()
	res := s.Solve(puzzle)

	require.NotNil(t, res.Solution)
	assert.Equal(t, want, res.Solution.String())
	assert.Equal(t, 1, res.SolutionCount)
}

func TestCountSolutionsUnique(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	res := s.CountSolutions(puzzle, 2)
	assert.Equal(t, 1, res.SolutionCount)
	assert.True(t, s.HasUniqueSolution(puzzle))
}

func TestCountSolutionsMultiple(t *testing.T) {
	// An almost-empty valid board admits many completions.
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 1)

	s := New()
	res := s.CountSolutions(b, 2)
	assert.Equal(t, 2, res.SolutionCount)
	assert.False(t, s.HasUniqueSolution(b))
}

func TestNoSolution(t *testing.T) {
	// Two 1s in the same row: unsatisfiable.
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 1)
	b.Set(0, 1, 1)

	s := New()
	res := s.Solve(b)
	assert.True(t, res.NoSolution())
	assert.Nil(t, res.Solution)
}

func TestMetricsIterationCountPositive(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	s := New()
	_, metrics := s.SolveWithMetrics(puzzle)
	assert.Greater(t, metrics.IterationCount, 0)
	assert.GreaterOrEqual(t, metrics.PropagationCycles, metrics.IterationCount)
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	before := puzzle.String()

	s := New()
	s.Solve(puzzle)

	assert.Equal(t, before, puzzle.String())
}

// TestSearchMasksStayConsistentWithBoard checks that the incrementally
// maintained ConstraintMasks always match a fresh derivation from the
// board, both after a run of place() calls and after unwinding them via
// undoTo — the same invariant propagate() and pickMostConstrained() rely
// on instead of re-deriving the masks themselves.
func TestSearchMasksStayConsistentWithBoard(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	w := newSearch(b, 1)

	mark := len(w.undo)
	w.place(0, 5)  // row 0, col 0
	w.place(10, 7) // row 1, col 1
	assertMasksMatchBoard(t, w)

	w.undoTo(mark)
	assertMasksMatchBoard(t, w)
}

func assertMasksMatchBoard(t *testing.T, w *search) {
	t.Helper()
	fresh := core.NewConstraintMasks(w.board)
	for i := range fresh.Row {
		assert.Equal(t, fresh.Row[i], w.cm.Row[i])
		assert.Equal(t, fresh.Col[i], w.cm.Col[i])
		assert.Equal(t, fresh.Box[i], w.cm.Box[i])
	}
}

func TestCompositeScoreFormula(t *testing.T) {
	m := core.SolverMetrics{IterationCount: 10, MaxBacktrackDepth: 3, GuessCount: 2, PropagationCycles: 20}
	want := 0.50*10 + 0.20*(2*3) + 0.20*(3*2) + 0.10*(20.0/10.0)
	assert.InDelta(t, want, m.CompositeScore(), 1e-9)
}
