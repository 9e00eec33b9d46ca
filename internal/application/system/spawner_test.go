package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/arena/internal/domain/entity"
)

// scriptedSampler returns queued values in order and records requested ranges
type scriptedSampler struct {
	values []float64
	ranges [][2]float64
}

func (s *scriptedSampler) Range(min, max float64) float64 {
	s.ranges = append(s.ranges, [2]float64{min, max})
	if len(s.values) == 0 {
		return min
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func makeEnemies(n int, ids *entity.IDSource) []*entity.Enemy {
	enemies := make([]*entity.Enemy, 0, n)
	for i := 0; i < n; i++ {
		enemies = append(enemies, entity.NewEnemy(ids.Next(), entity.V(0, 0), 50, 3))
	}
	return enemies
}

func TestSpawner_AppendsOneAtLowWaterMark(t *testing.T) {
	cfg := createTestGameConfig()
	sampler := &scriptedSampler{values: []float64{120, 240, 55}}
	spawner := NewSpawner(cfg, sampler)
	ids := entity.NewIDSource()

	enemies := makeEnemies(3, ids)
	enemies, spawned := spawner.Maintain(enemies, ids)

	require.NotNil(t, spawned)
	assert.Len(t, enemies, 4)
	assert.Equal(t, entity.V(120, 240), spawned.Pos)
	assert.Equal(t, 55.0, spawned.Speed)
	assert.Equal(t, cfg.Enemy.MaxHealth, spawned.Health)
	assert.Equal(t, 0.0, spawned.FireTimer, "fresh enemies may fire immediately")
	assert.Equal(t, entity.EntityID(4), spawned.ID)

	assert.Equal(t, [][2]float64{{50, 750}, {50, 550}, {40, 80}}, sampler.ranges,
		"samples x, y then speed within margin-inset field")
}

func TestSpawner_NothingAboveLowWaterMark(t *testing.T) {
	cfg := createTestGameConfig()
	sampler := &scriptedSampler{}
	spawner := NewSpawner(cfg, sampler)
	ids := entity.NewIDSource()

	enemies := makeEnemies(4, ids)
	enemies, spawned := spawner.Maintain(enemies, ids)

	assert.Nil(t, spawned)
	assert.Len(t, enemies, 4)
	assert.Empty(t, sampler.ranges, "no draws when nothing spawns")
}

func TestSpawner_RecoversOnePerCall(t *testing.T) {
	cfg := createTestGameConfig()
	spawner := NewSpawner(cfg, NewRandSampler(12345))
	ids := entity.NewIDSource()

	var enemies []*entity.Enemy
	for frame := 1; frame <= 4; frame++ {
		enemies, _ = spawner.Maintain(enemies, ids)
		assert.Len(t, enemies, frame)
	}

	enemies, spawned := spawner.Maintain(enemies, ids)
	assert.Nil(t, spawned)
	assert.Len(t, enemies, 4)
}

func TestSpawner_SampledValuesInRange(t *testing.T) {
	cfg := createTestGameConfig()
	spawner := NewSpawner(cfg, NewRandSampler(12345))
	ids := entity.NewIDSource()

	for i := 0; i < 200; i++ {
		_, e := spawner.Maintain(nil, ids)
		require.NotNil(t, e)
		assert.GreaterOrEqual(t, e.Pos.X, 50.0)
		assert.Less(t, e.Pos.X, 750.0)
		assert.GreaterOrEqual(t, e.Pos.Y, 50.0)
		assert.Less(t, e.Pos.Y, 550.0)
		assert.GreaterOrEqual(t, e.Speed, 40.0)
		assert.Less(t, e.Speed, 80.0)
	}
}
