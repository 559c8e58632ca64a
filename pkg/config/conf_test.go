package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ReadOrCreate(t *testing.T) {
	dir := t.TempDir()

	c1, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c1)

	// Defaults.
	assert.Equal(t, 100, c1.Trees)
	assert.Equal(t, uint64(42), c1.Seed)
	assert.Equal(t, 500, c1.Samples)
	assert.Equal(t, "atmo_percent_predictor.model", c1.ModelFile)

	c1.Trees = 25
	c1.Seed = 7
	c1.Samples = 50

	err = Save(dir, c1)
	require.NoError(t, err)

	c2, err := ReadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, c2)
	assert.Equal(t, c1.Trees, c2.Trees)
	assert.Equal(t, c1.Seed, c2.Seed)
	assert.Equal(t, c1.Samples, c2.Samples)
	assert.Equal(t, c1.ModelFile, c2.ModelFile)
}

func TestConfig_EmptyDir(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.Error(t, err)

	err = Save("", getDefaultConfig())
	assert.Error(t, err)
}

func TestConfig_SaveNil(t *testing.T) {
	err := Save(t.TempDir(), nil)
	assert.Error(t, err)
}
