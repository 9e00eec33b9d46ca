package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/configs"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/logging"
)

func TestSimulate_Deterministic(t *testing.T) {
	cfg := config.Default()

	a, err := Simulate(cfg, 12345, 1800, 1.0/60, logging.Discard())
	require.NoError(t, err)
	b, err := Simulate(cfg, 12345, 1800, 1.0/60, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a.Digest, 64)
	assert.Equal(t, 1800, a.Frames)
	assert.Positive(t, a.Kills)
}

func TestSimulate_ZeroFrames(t *testing.T) {
	res, err := Simulate(config.Default(), 1, 0, 1.0/60, logging.Discard())
	require.NoError(t, err)

	assert.Zero(t, res.Kills)
	assert.Zero(t, res.FinalScore)
	assert.NotEmpty(t, res.Digest)
}

func TestEmbeddedConfigLoads(t *testing.T) {
	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll()
	require.NoError(t, err)
	assert.Equal(t, config.Default().Field, cfg.Field)
}
