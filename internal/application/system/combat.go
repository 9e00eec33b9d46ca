package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// CombatSystem decides which bullets hit what and applies the damage.
//
// Resolution runs in two phases. Classify scans the bullets against the
// actors as they stand at the start of the pass and records HitIntents;
// Apply then deals damage and compacts the collection. Nothing is removed
// from a slice while it is being iterated.
type CombatSystem struct {
	config *config.GameConfig
	field  entity.Field
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		field:  entity.Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
	}
}

// Resolution summarizes one resolve pass
type Resolution struct {
	Bullets      []*entity.Bullet // survivors, in original order
	Hits         []HitIntent
	EnemyHits    int
	PlayerHits   int
	OutOfBounds  int
	PlayerKilled bool
}

// Resolve classifies every bullet and applies the outcome
func (s *CombatSystem) Resolve(player *entity.Player, enemies []*entity.Enemy, bullets []*entity.Bullet) Resolution {
	hits := s.Classify(player, enemies, bullets)
	return s.Apply(hits, player, enemies, bullets)
}

// Classify returns one HitIntent per removed bullet, in bullet order.
// First matching rule wins: out of bounds, then player bullet vs the
// first enemy in range, then enemy bullet vs a living player.
func (s *CombatSystem) Classify(player *entity.Player, enemies []*entity.Enemy, bullets []*entity.Bullet) []HitIntent {
	radius := s.config.Player.HitRadius()
	var hits []HitIntent

	// the player stops absorbing bullets as soon as pending hits kill it
	playerHealth := player.Health
	playerAlive := player.IsAlive()

	for _, b := range bullets {
		if !b.Active {
			continue
		}

		if !s.field.Contains(b.Pos) {
			hits = append(hits, HitIntent{BulletID: b.ID, Kind: HitOutOfBounds})
			continue
		}

		if b.IsPlayer() {
			for _, e := range enemies {
				if !e.Active {
					continue
				}
				if e.Pos.Dist(b.Pos) < radius {
					hits = append(hits, HitIntent{BulletID: b.ID, Kind: HitEnemy, Target: e.ID})
					break
				}
			}
			continue
		}

		if playerAlive && player.Pos.Dist(b.Pos) < radius {
			hits = append(hits, HitIntent{BulletID: b.ID, Kind: HitPlayer, Target: entity.PlayerID})
			playerHealth--
			if playerHealth <= 0 {
				playerAlive = false
			}
		}
	}
	return hits
}

// Apply deals the damage described by hits, deactivates the struck bullets
// and returns the compacted survivors.
func (s *CombatSystem) Apply(hits []HitIntent, player *entity.Player, enemies []*entity.Enemy, bullets []*entity.Bullet) Resolution {
	res := Resolution{Hits: hits}
	if len(hits) == 0 {
		res.Bullets = bullets
		return res
	}

	bulletByID := make(map[entity.EntityID]*entity.Bullet, len(bullets))
	for _, b := range bullets {
		bulletByID[b.ID] = b
	}
	enemyByID := make(map[entity.EntityID]*entity.Enemy, len(enemies))
	for _, e := range enemies {
		enemyByID[e.ID] = e
	}

	for _, hit := range hits {
		if b, ok := bulletByID[hit.BulletID]; ok {
			b.Deactivate()
		}
		switch hit.Kind {
		case HitOutOfBounds:
			res.OutOfBounds++
		case HitEnemy:
			if e, ok := enemyByID[hit.Target]; ok {
				e.TakeDamage(1)
				res.EnemyHits++
			}
		case HitPlayer:
			if player.TakeHit() {
				res.PlayerKilled = true
			}
			res.PlayerHits++
		}
	}

	res.Bullets = compactBullets(bullets)
	return res
}

// ResolveDeaths removes every enemy with no health left and returns the
// survivors together with the removed enemies.
func (s *CombatSystem) ResolveDeaths(enemies []*entity.Enemy) ([]*entity.Enemy, []*entity.Enemy) {
	var dead []*entity.Enemy
	for _, e := range enemies {
		if e.Health <= 0 {
			e.Active = false
			dead = append(dead, e)
		}
	}
	if len(dead) == 0 {
		return enemies, nil
	}
	return compactEnemies(enemies), dead
}

func compactBullets(bullets []*entity.Bullet) []*entity.Bullet {
	out := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			out = append(out, b)
		}
	}
	clear(bullets[len(out):])
	return out
}

func compactEnemies(enemies []*entity.Enemy) []*entity.Enemy {
	out := enemies[:0]
	for _, e := range enemies {
		if e.Active {
			out = append(out, e)
		}
	}
	clear(enemies[len(out):])
	return out
}
