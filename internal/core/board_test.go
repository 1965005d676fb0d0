package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardInvalidShape(t *testing.T) {
	_, err := NewBoard(9, 2, 3)
	require.Error(t, err)
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestBoardBoxIndex(t *testing.T) {
	b, err := NewBoard(9, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, b.BoxIndex(0, 0))
	assert.Equal(t, 0, b.BoxIndex(2, 2))
	assert.Equal(t, 1, b.BoxIndex(0, 3))
	assert.Equal(t, 4, b.BoxIndex(4, 4))
	assert.Equal(t, 8, b.BoxIndex(8, 8))
}

func TestBoardBoxCellsRowMajor(t *testing.T) {
	b, err := NewBoard(9, 3, 3)
	require.NoError(t, err)

	cells := b.BoxCells(4) // center box
	want := []int{30, 31, 32, 39, 40, 41, 48, 49, 50}
	assert.Equal(t, want, cells)
}

func TestParseBoardRoundTrip(t *testing.T) {
	input := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	b, offenses, err := ParseBoard(9, 3, 3, input)
	require.NoError(t, err)
	assert.Nil(t, offenses)
	assert.Equal(t, "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79", b.String())

	b2, offenses2, err := ParseBoard(9, 3, 3, b.String())
	require.NoError(t, err)
	assert.Nil(t, offenses2)
	assert.Equal(t, b.Cells, b2.Cells)
}

func TestParseBoardShortInputZeroPadded(t *testing.T) {
	b, _, err := ParseBoard(4, 2, 2, "12")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, b.Cells)
}

func TestParseBoardOffenses(t *testing.T) {
	b, offenses, err := ParseBoard(4, 2, 2, "12ab............")
	require.NoError(t, err)
	require.NotNil(t, offenses)
	assert.Equal(t, 0, b.Cells[2])
	assert.Equal(t, 0, b.Cells[3])
	assert.Len(t, offenses.Offenses, 2)
}

func TestBoardCloneIndependent(t *testing.T) {
	b, err := NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 5)

	clone := b.Clone()
	clone.Set(0, 0, 9)

	assert.Equal(t, 5, b.Get(0, 0))
	assert.Equal(t, 9, clone.Get(0, 0))
}

func TestBoardIsCompleteAndClueCount(t *testing.T) {
	b, err := NewBoard(4, 2, 2)
	require.NoError(t, err)
	assert.False(t, b.IsComplete())
	assert.Equal(t, 0, b.ClueCount())

	for i := range b.Cells {
		b.Cells[i] = 1
	}
	assert.True(t, b.IsComplete())
	assert.Equal(t, 16, b.ClueCount())
}

func TestHasUnitConflicts(t *testing.T) {
	b, err := NewBoard(4, 2, 2)
	require.NoError(t, err)
	assert.False(t, b.HasUnitConflicts())

	b.Set(0, 0, 1)
	b.Set(0, 1, 1) // duplicate in row 0
	assert.True(t, b.HasUnitConflicts())
}
