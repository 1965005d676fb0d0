package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrew867/sudokugen/internal/core"
)

func TestParseDifficultiesDropsUnrecognizedAndTrims(t *testing.T) {
	got := ParseDifficulties(" easy, bogus ,Hard")
	assert.Equal(t, []core.Class{core.Easy, core.Hard}, got)
}

func TestParseDifficultiesEmptyDefaultsToMedium(t *testing.T) {
	assert.Equal(t, []core.Class{core.Medium}, ParseDifficulties(""))
	assert.Equal(t, []core.Class{core.Medium}, ParseDifficulties("nonsense"))
}

func TestDistributeSingleDifficulty(t *testing.T) {
	got := Distribute([]core.Class{core.Hard}, 4)
	assert.Equal(t, []core.Class{core.Hard, core.Hard, core.Hard, core.Hard}, got)
}

func TestDistributeTwoDifficultiesScenario(t *testing.T) {
	got := Distribute([]core.Class{core.Easy, core.Medium}, 5)
	assert.Equal(t, []core.Class{core.Easy, core.Easy, core.Medium, core.Medium, core.Easy}, got)
}

func TestDistributeThreeDifficultiesScenario(t *testing.T) {
	got := Distribute([]core.Class{core.Easy, core.Medium, core.Hard}, 9)
	want := []core.Class{
		core.Easy, core.Easy, core.Medium, core.Medium, core.Hard, core.Hard,
		core.Easy, core.Easy, core.Medium,
	}
	assert.Equal(t, want, got)
}

func TestDistributeEmptyInputs(t *testing.T) {
	assert.Nil(t, Distribute(nil, 5))
	assert.Nil(t, Distribute([]core.Class{core.Easy}, 0))
}
