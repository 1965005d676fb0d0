package technique

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

func TestDetectNakedSingle(t *testing.T) {
	// A cell whose row/col/box together leave exactly one candidate.
	b := mustBoard(t, "534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	// Blank one cell that must resolve to a naked single.
	b.SetAt(80, 0)
	cg := core.NewCandidateGrid(b)
	instances := DetectNakedSingles(b, cg)
	require.NotEmpty(t, instances)
	assert.Equal(t, core.NakedSingle, instances[0].Tag)
}

func TestCellsCanSeeEachOther(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	assert.True(t, cellsCanSeeEachOther(b, 0, 1))  // same row
	assert.True(t, cellsCanSeeEachOther(b, 0, 9))  // same col
	assert.True(t, cellsCanSeeEachOther(b, 0, 10)) // same box
	assert.False(t, cellsCanSeeEachOther(b, 0, 0)) // same cell
	assert.False(t, cellsCanSeeEachOther(b, 0, 40))
}

func TestTechniqueScoreViaDetectAll(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	cg := core.NewCandidateGrid(puzzle)
	instances := DetectAll(puzzle, cg)
	// At minimum naked/hidden singles should fire on a standard puzzle.
	assert.NotEmpty(t, instances)
	score := core.TechniqueScore(instances)
	assert.Greater(t, score, 0.0)
}

func TestRegistryDisable(t *testing.T) {
	puzzle := mustBoard(t, "530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	cg := core.NewCandidateGrid(puzzle)

	r := NewRegistry()
	r.SetEnabled(core.NakedSingle, false)
	r.SetEnabled(core.HiddenSingle, false)

	instances := r.DetectAll(puzzle, cg)
	for _, inst := range instances {
		assert.NotEqual(t, core.NakedSingle, inst.Tag)
		assert.NotEqual(t, core.HiddenSingle, inst.Tag)
	}
}

func TestCombinationsBasic(t *testing.T) {
	c := combinations([]int{1, 2, 3}, 2)
	assert.Len(t, c, 3)
}
