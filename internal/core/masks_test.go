package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullMask(t *testing.T) {
	assert.Equal(t, Mask(0b1111), FullMask(4))
	assert.Equal(t, Mask(0b111111111), FullMask(9))
}

func TestMaskSetClearHas(t *testing.T) {
	var m Mask
	m = m.Set(3)
	assert.True(t, m.Has(3))
	assert.False(t, m.Has(4))
	m = m.Clear(3)
	assert.False(t, m.Has(3))
}

func TestMaskOnly(t *testing.T) {
	m := FullMask(9).Clear(1).Clear(2).Clear(3).Clear(4).Clear(5).Clear(6).Clear(7).Clear(8)
	d, ok := m.Only()
	assert.True(t, ok)
	assert.Equal(t, 9, d)

	m2 := FullMask(9)
	_, ok2 := m2.Only()
	assert.False(t, ok2)
}

func TestConstraintMasksDerivation(t *testing.T) {
	b, err := NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 5)

	cm := NewConstraintMasks(b)
	assert.False(t, cm.Row[0].Has(5))
	assert.False(t, cm.Col[0].Has(5))
	assert.False(t, cm.Box[0].Has(5))
	assert.True(t, cm.Row[1].Has(5))
}

func TestCandidateGridEmptyVsFilled(t *testing.T) {
	b, err := NewBoard(9, 3, 3)
	require.NoError(t, err)
	b.Set(0, 0, 5)

	cg := NewCandidateGrid(b)
	assert.Equal(t, Mask(0), cg.At(0))
	assert.False(t, cg.At(1).Has(5))
	assert.True(t, cg.At(80).Has(5))
}

func TestTechniqueScoreAggregation(t *testing.T) {
	instances := []Instance{
		{Tag: NakedSingle},
		{Tag: HiddenSingle},
		{Tag: NakedPair},
	}
	assert.InDelta(t, 5.0, TechniqueScore(instances), 1e-9)
	assert.Equal(t, 0.0, TechniqueScore(nil))
}

func TestTechniqueWeightTable(t *testing.T) {
	got := []int{
		NakedSingle.Weight(), HiddenSingle.Weight(), NakedPair.Weight(), HiddenPair.Weight(),
		XWing.Weight(), XYWing.Weight(), Swordfish.Weight(), XYZWing.Weight(),
	}
	want := []int{1, 2, 4, 5, 8, 10, 12, 14}
	assert.Equal(t, want, got)
}
