package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{})
	assert.NoError(t, err)
	assert.Equal(t, "books", c.BadSubgraph)
	assert.Equal(t, 1, c.NumThreads)
	assert.Equal(t, ".", c.SaveDir)
	assert.Equal(t, 0, c.MaxSteps)
	assert.False(t, c.Save)
}

func TestLoadArgs(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{
		"-num-vertices", "14",
		"-bad-subgraph", "wheels",
		"-bad-sizes", "5,7",
		"-num-threads", "4",
		"-seed", "12345",
		"-quiet",
		"-save",
	})
	assert.NoError(t, err)
	assert.Equal(t, 14, c.NumVertices)
	assert.Equal(t, "wheels", c.BadSubgraph)
	assert.Equal(t, "5,7", c.BadSizes)
	assert.Equal(t, 4, c.NumThreads)
	assert.Equal(t, uint64(12345), c.Seed)
	assert.True(t, c.Quiet)
	assert.True(t, c.Save)
}

func TestLoadBadArg(t *testing.T) {
	c := &Config{}
	err := c.Load([]string{"-num-vertices", "not-a-number"})
	assert.Error(t, err)
}
