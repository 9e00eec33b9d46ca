package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadArena(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadArena()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 600, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 800.0, cfg.Field.Width)
	assert.Equal(t, 5, cfg.Player.MaxHealth)
	assert.Equal(t, 0.2, cfg.Player.FireCooldown)
	assert.Equal(t, 500.0, cfg.Player.BulletSpeed)
	assert.Equal(t, 16.0, cfg.Player.HitRadius())
	assert.Equal(t, 300.0, cfg.Enemy.BulletSpeed)
	assert.Equal(t, 3, cfg.Spawner.LowWaterMark)
	assert.Equal(t, FireContinuous, cfg.Session.FireMode)
	require.Len(t, cfg.Enemy.Roster, 2)
	assert.Equal(t, EnemySpawnConfig{X: 700, Y: 400, Speed: 60}, cfg.Enemy.Roster[1])
}

func TestLoader_EmbeddedMatchesDefault(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadArena()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"arena.json": {Data: []byte(`{"player": {"maxHealth": 9}, "session": {"freezeOnGameOver": true}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadArena()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Player.MaxHealth)
	assert.True(t, cfg.Session.FreezeOnGameOver)
	assert.Equal(t, 200.0, cfg.Player.Speed, "unspecified fields fall back to defaults")
	assert.Equal(t, Default().Enemy.Roster, cfg.Enemy.Roster)
}

func TestLoader_RosterReplacedWholesale(t *testing.T) {
	fsys := fstest.MapFS{
		"arena.json": {Data: []byte(`{"enemy": {"roster": [{"x": 5, "y": 6, "speed": 7}]}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadArena()
	require.NoError(t, err)

	assert.Equal(t, []EnemySpawnConfig{{X: 5, Y: 6, Speed: 7}}, cfg.Enemy.Roster)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadArena()
	assert.Error(t, err)
}

func TestLoader_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{"arena.json": {Data: []byte(`{"player": `)}}

	_, err := NewFSLoader(fsys, "mem").LoadArena()
	assert.ErrorContains(t, err, "failed to parse arena.json")
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoader_LoadAllRejectsInvalid(t *testing.T) {
	fsys := fstest.MapFS{"arena.json": {Data: []byte(`{"session": {"fireMode": "burst"}}`)}}

	_, err := NewFSLoader(fsys, "mem").LoadAll()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
