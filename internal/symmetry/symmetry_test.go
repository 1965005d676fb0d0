package symmetry

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

func TestFullyFilledBoardIsSymmetricInEveryWay(t *testing.T) {
	b := mustBoard(t, "534678912672195348198342567859761423426853791713924856961537284287419635345286179")
	info := Detect(b)
	assert.True(t, info.Rotational)
	assert.True(t, info.Horizontal)
	assert.True(t, info.Vertical)
	assert.True(t, info.Diagonal)
	assert.InDelta(t, 1.0, info.Score, 1e-9)
}

func TestEmptyBoardIsSymmetricInEveryWay(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	info := Detect(b)
	assert.True(t, info.Rotational)
	assert.True(t, info.Horizontal)
	assert.True(t, info.Vertical)
	assert.True(t, info.Diagonal)
}

func TestRotationalOnlyLayoutScoresPartial(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	// Clue (0,0) and its 180-degree twin (8,8), nothing else: rotational
	// holds, the three mirror symmetries do not.
	b.Set(0, 0, 5)
	b.Set(8, 8, 5)

	info := Detect(b)
	assert.True(t, info.Rotational)
	assert.False(t, info.Horizontal)
	assert.False(t, info.Vertical)
	assert.False(t, info.Diagonal)
	assert.InDelta(t, weightRotational, info.Score, 1e-9)
}

func TestAsymmetricLayoutScoresZero(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 5)

	info := Detect(b)
	assert.False(t, info.Rotational)
	assert.False(t, info.Horizontal)
	assert.False(t, info.Vertical)
	assert.False(t, info.Diagonal)
	assert.Equal(t, 0.0, info.Score)
}

func TestDiagonalSymmetricLayout(t *testing.T) {
	b, err := core.NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(1, 4, 7)
	b.Set(4, 1, 7)

	info := Detect(b)
	assert.True(t, info.Diagonal)
	assert.False(t, info.Horizontal)
	assert.False(t, info.Vertical)
}
