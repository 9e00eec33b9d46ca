package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// WeaponSystem handles aiming, cooldowns and shot requests.
// It never creates bullets itself; it returns FireIntents.
type WeaponSystem struct {
	config *config.GameConfig
}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem(cfg *config.GameConfig) *WeaponSystem {
	return &WeaponSystem{config: cfg}
}

// muzzle is where a bullet leaves an actor of the configured size
func (s *WeaponSystem) muzzle(pos entity.Vec2) entity.Vec2 {
	half := s.config.Player.Size / 2
	return pos.Add(entity.V(half, half))
}

// Aim points the player at target and returns the unit aim direction.
// Facing is left untouched while the player is dead.
func (s *WeaponSystem) Aim(p *entity.Player, target entity.Vec2) entity.Vec2 {
	dir := target.Sub(p.Pos).DirectionOr(entity.DefaultAim)
	if p.IsAlive() {
		p.Facing = dir.Angle()
	}
	return dir
}

// UpdatePlayer fires if requested and allowed, then ticks the cooldown
func (s *WeaponSystem) UpdatePlayer(p *entity.Player, aim entity.Vec2, trigger bool, dt float64) []FireIntent {
	var intents []FireIntent
	if trigger && p.CanFire() {
		intents = append(intents, FireIntent{
			Shooter:  entity.PlayerID,
			Owner:    entity.OwnerPlayer,
			Origin:   s.muzzle(p.Pos),
			Velocity: aim.Scale(s.config.Player.BulletSpeed),
		})
		p.FireTimer = s.config.Player.FireCooldown
	}
	p.FireTimer -= dt
	return intents
}

// UpdateEnemies lets every enemy whose cooldown has elapsed shoot at target.
// Enemies closer than MinEngageRange hold fire but keep cooling down.
func (s *WeaponSystem) UpdateEnemies(enemies []*entity.Enemy, target entity.Vec2, dt float64) []FireIntent {
	var intents []FireIntent
	minRange := s.config.Enemy.MinEngageRange
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		if e.FireTimer <= 0 {
			toTarget := target.Sub(e.Pos)
			if minRange <= 0 || toTarget.Len() >= minRange {
				dir := toTarget.DirectionOr(entity.DefaultAim)
				intents = append(intents, FireIntent{
					Shooter:  e.ID,
					Owner:    entity.OwnerEnemy,
					Origin:   s.muzzle(e.Pos),
					Velocity: dir.Scale(s.config.Enemy.BulletSpeed),
				})
				e.FireTimer = s.config.Enemy.FireCooldown
			}
		}
		e.FireTimer -= dt
	}
	return intents
}
