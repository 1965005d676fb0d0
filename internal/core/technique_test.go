package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagRoundTripsEveryTag(t *testing.T) {
	for _, tag := range []Tag{NakedSingle, HiddenSingle, NakedPair, HiddenPair, XWing, XYWing, Swordfish, XYZWing} {
		got, ok := ParseTag(tag.String())
		assert.True(t, ok)
		assert.Equal(t, tag, got)
	}
}

func TestParseTagIsCaseInsensitiveAndTrims(t *testing.T) {
	got, ok := ParseTag("  xWing ")
	assert.True(t, ok)
	assert.Equal(t, XWing, got)
}

func TestParseTagRejectsUnknown(t *testing.T) {
	_, ok := ParseTag("not-a-technique")
	assert.False(t, ok)
}

func TestTechniqueScoreEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TechniqueScore(nil))
}

func TestTechniqueScoreMaxWeightPlusDistinctBonus(t *testing.T) {
	instances := []Instance{
		{Tag: NakedSingle},
		{Tag: XWing},
		{Tag: XWing},
	}
	// max weight 8 (XWing), plus 0.5 per additional distinct tag beyond
	// the first (NakedSingle, XWing -> 2 distinct -> +0.5).
	assert.Equal(t, 8.5, TechniqueScore(instances))
}
