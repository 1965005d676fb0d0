package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultViper() *viper.Viper {
	v := viper.New()
	Defaults(v)
	return v
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(newDefaultViper())
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Size)
	assert.Equal(t, 3, cfg.BoxRows)
	assert.Equal(t, 3, cfg.BoxCols)
	assert.Equal(t, "medium", cfg.Difficulty)
	assert.True(t, cfg.UseRefinement)
	assert.False(t, cfg.SeedSet)
}

func TestLoadRejectsInconsistentShape(t *testing.T) {
	v := newDefaultViper()
	v.Set("box_rows", 2)
	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveCount(t *testing.T) {
	v := newDefaultViper()
	v.Set("count", 0)
	_, err := Load(v)
	assert.Error(t, err)
}

func TestLoadDetectsExplicitSeed(t *testing.T) {
	v := newDefaultViper()
	v.Set("seed", int64(42))
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, int64(42), cfg.Seed)
}
