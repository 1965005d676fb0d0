package analyzer

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

const scenario1Puzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
const scenario1Solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestDistributionCountsAndVariance(t *testing.T) {
	puzzle := mustBoard(t, scenario1Puzzle)
	a := New()
	dist := a.Distribution(puzzle)

	assert.Len(t, dist.RowCounts, 9)
	assert.Len(t, dist.ColCounts, 9)
	assert.Len(t, dist.BoxCounts, 9)

	sum := 0
	for _, c := range dist.RowCounts {
		sum += c
	}
	assert.Equal(t, puzzle.ClueCount(), sum)
	assert.GreaterOrEqual(t, dist.Variance, 0.0)
}

func TestImportanceOfClueIsWithinUnitInterval(t *testing.T) {
	puzzle := mustBoard(t, scenario1Puzzle)
	solution := mustBoard(t, scenario1Solution)
	a := New()

	clues := puzzle.Clues()
	require.NotEmpty(t, clues)
	row, col := clues[0].Index/puzzle.Size, clues[0].Index%puzzle.Size
	v := a.Importance(puzzle, solution, row, col)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestImportanceOfEmptyCellIsZero(t *testing.T) {
	puzzle := mustBoard(t, scenario1Puzzle)
	solution := mustBoard(t, scenario1Solution)
	a := New()

	empties := puzzle.EmptyCells()
	require.NotEmpty(t, empties)
	row, col := empties[0]/puzzle.Size, empties[0]%puzzle.Size
	assert.Equal(t, 0.0, a.Importance(puzzle, solution, row, col))
}

func TestCluesByImportanceIsAscending(t *testing.T) {
	puzzle := mustBoard(t, scenario1Puzzle)
	solution := mustBoard(t, scenario1Solution)
	a := New()

	ranked := a.CluesByImportance(puzzle, solution)
	assert.Equal(t, puzzle.ClueCount(), len(ranked))

	var prev float64
	for i, c := range ranked {
		row, col := c.Index/puzzle.Size, c.Index%puzzle.Size
		v := a.Importance(puzzle, solution, row, col)
		if i > 0 {
			assert.GreaterOrEqual(t, v, prev)
		}
		prev = v
	}
}

func TestCandidateClueAdditionsCoversEveryEmptyCell(t *testing.T) {
	puzzle := mustBoard(t, scenario1Puzzle)
	solution := mustBoard(t, scenario1Solution)
	a := New()

	additions := a.CandidateClueAdditions(puzzle, solution)
	assert.Equal(t, len(puzzle.EmptyCells()), len(additions))
	for _, c := range additions {
		assert.Equal(t, solution.GetAt(c.Index), c.Digit)
	}
}

func TestRotationalSymmetryPairsCoverAllCellsOnce(t *testing.T) {
	pairs := RotationalSymmetryPairs(9)
	seen := make(map[int]bool)
	for _, p := range pairs {
		assert.False(t, seen[p[0]])
		assert.False(t, seen[p[1]])
		seen[p[0]] = true
		seen[p[1]] = true
	}
	assert.Len(t, seen, 81)
}

func TestRotationalSymmetryPairsCenterSelfPaired(t *testing.T) {
	pairs := RotationalSymmetryPairs(9)
	found := false
	for _, p := range pairs {
		if p[0] == 40 && p[1] == 40 {
			found = true
		}
	}
	assert.True(t, found, "center cell of a 9x9 board should pair with itself")
}
