package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Spawner keeps the enemy population from running dry
type Spawner struct {
	config  *config.GameConfig
	sampler Sampler
}

// NewSpawner creates a spawner drawing positions and speeds from sampler
func NewSpawner(cfg *config.GameConfig, sampler Sampler) *Spawner {
	return &Spawner{config: cfg, sampler: sampler}
}

// Maintain appends at most one enemy when the population is at or below
// the low-water mark. It returns the new collection and the spawned
// enemy, or nil if none was needed.
func (s *Spawner) Maintain(enemies []*entity.Enemy, ids *entity.IDSource) ([]*entity.Enemy, *entity.Enemy) {
	if len(enemies) > s.config.Spawner.LowWaterMark {
		return enemies, nil
	}

	sp := s.config.Spawner
	field := s.config.Field
	// draw order is x, y, speed
	x := s.sampler.Range(sp.Margin, field.Width-sp.Margin)
	y := s.sampler.Range(sp.Margin, field.Height-sp.Margin)
	speed := s.sampler.Range(sp.MinSpeed, sp.MaxSpeed)

	e := entity.NewEnemy(ids.Next(), entity.V(x, y), speed, s.config.Enemy.MaxHealth)
	return append(enemies, e), e
}
