package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/solver"
)

func TestGenerateProducesValidUniquePuzzle(t *testing.T) {
	g := NewWithSeed(42)
	gp, err := g.Generate(core.Easy, core.Classical, 9, 3, 3, false)
	require.NoError(t, err)

	assert.Equal(t, 9, gp.Puzzle.Size)
	assert.True(t, gp.Solution.IsComplete())
	assert.False(t, gp.Puzzle.HasUnitConflicts())
	assert.True(t, gp.SeedSet)
	assert.Equal(t, int64(42), gp.Seed)

	s := solver.New()
	assert.True(t, s.HasUniqueSolution(gp.Puzzle))

	for i, v := range gp.Puzzle.Cells {
		if v != 0 {
			assert.Equal(t, gp.Solution.Cells[i], v)
		}
	}
}

func TestGenerateSameSeedSameDifficultyIsDeterministic(t *testing.T) {
	g1 := NewWithSeed(7)
	gp1, err := g1.Generate(core.Medium, core.Classical, 9, 3, 3, false)
	require.NoError(t, err)

	g2 := NewWithSeed(7)
	gp2, err := g2.Generate(core.Medium, core.Classical, 9, 3, 3, false)
	require.NoError(t, err)

	assert.Equal(t, gp1.Solution.Cells, gp2.Solution.Cells)
	assert.Equal(t, gp1.Puzzle.Cells, gp2.Puzzle.Cells)
}

func TestGenerateRespectsMinimumClueFloorFor9x9(t *testing.T) {
	g := NewWithSeed(100)
	gp, err := g.Generate(core.Evil, core.Classical, 9, 3, 3, false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, gp.Puzzle.ClueCount(), minCluesClassic9)
}

func TestGenerateSmallerShape(t *testing.T) {
	g := NewWithSeed(3)
	gp, err := g.Generate(core.Easy, core.Classical, 4, 2, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 4, gp.Puzzle.Size)
	assert.True(t, gp.Solution.IsComplete())
}
