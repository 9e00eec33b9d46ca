// Package session owns the entity collections of one arena and steps them
// frame by frame.
package session

import (
	"log/slog"

	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Session aggregates the player, enemies, bullets and score of a play
// session. It is not safe for concurrent use; call Step from one goroutine.
type Session struct {
	config *config.GameConfig
	field  entity.Field
	logger *slog.Logger

	movement *system.MovementSystem
	weapons  *system.WeaponSystem
	combat   *system.CombatSystem
	spawner  *system.Spawner
	trigger  *system.Trigger

	ids     *entity.IDSource
	player  *entity.Player
	enemies []*entity.Enemy
	bullets []*entity.Bullet
	score   int
	state   state.GameState
	frame   uint64
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for lifecycle events
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a session in its initial state. cfg should already be validated.
func New(cfg *config.GameConfig, sampler system.Sampler, opts ...Option) *Session {
	s := &Session{
		config:   cfg,
		field:    entity.Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
		logger:   slog.Default(),
		movement: system.NewMovementSystem(),
		weapons:  system.NewWeaponSystem(cfg),
		combat:   system.NewCombatSystem(cfg),
		spawner:  system.NewSpawner(cfg, sampler),
		trigger:  system.NewTrigger(cfg.Session.FireMode == config.FireEdge),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// reset rebuilds every entity from the fixed initial parameters
func (s *Session) reset() {
	s.ids = entity.NewIDSource()
	s.player = entity.NewPlayer(s.field.Center(), s.config.Player.Speed, s.config.Player.MaxHealth)

	s.enemies = make([]*entity.Enemy, 0, len(s.config.Enemy.Roster)+1)
	for _, r := range s.config.Enemy.Roster {
		s.enemies = append(s.enemies, entity.NewEnemy(s.ids.Next(), entity.V(r.X, r.Y), r.Speed, s.config.Enemy.MaxHealth))
	}

	s.bullets = nil
	s.score = 0
	s.state = state.StatePlaying
	s.frame = 0
	s.trigger.Reset()
}

// Restart discards the session and rebuilds it from the initial parameters
func (s *Session) Restart() {
	s.logger.Info("session restarted", "previousScore", s.score, "frames", s.frame)
	s.reset()
}

// Step advances the simulation by dt seconds using one frame of input and
// returns the resulting snapshot.
//
// Frame order: restart check, player move/aim/fire, enemy seek/fire, new
// bullets appended, all bullets advanced, collisions resolved, dead enemies
// removed and scored, population maintained, game-over check.
func (s *Session) Step(dt float64, in system.InputState) Snapshot {
	if dt < 0 {
		dt = 0
	}

	if s.state == state.StateGameOver {
		if in.Restart {
			s.Restart()
			return s.Snapshot()
		}
		if s.config.Session.FreezeOnGameOver {
			return s.Snapshot()
		}
	}

	s.frame++
	var ev Events

	// player
	trigger := s.trigger.Pull(in.Fire)
	if !s.state.AcceptsInput() {
		trigger = false
	}
	aim := entity.DefaultAim
	if s.player.IsAlive() && s.state.AcceptsInput() {
		s.movement.MovePlayer(s.player, in, dt)
		aim = s.weapons.Aim(s.player, in.AimTarget())
	}
	shots := s.weapons.UpdatePlayer(s.player, aim, trigger, dt)
	ev.PlayerShots = len(shots)

	// enemies chase and shoot at the player even when it is dead
	s.movement.SeekEnemies(s.enemies, s.player.Pos, dt)
	enemyShots := s.weapons.UpdateEnemies(s.enemies, s.player.Pos, dt)
	ev.EnemyShots = len(enemyShots)

	s.fire(shots)
	s.fire(enemyShots)

	s.movement.AdvanceBullets(s.bullets, dt)

	res := s.combat.Resolve(s.player, s.enemies, s.bullets)
	s.bullets = res.Bullets
	ev.EnemyHits = res.EnemyHits
	ev.PlayerHits = res.PlayerHits

	var dead []*entity.Enemy
	s.enemies, dead = s.combat.ResolveDeaths(s.enemies)
	ev.Kills = len(dead)
	s.score += len(dead)
	for _, e := range dead {
		s.logger.Debug("enemy killed", "id", e.ID, "score", s.score)
	}

	var spawned *entity.Enemy
	s.enemies, spawned = s.spawner.Maintain(s.enemies, s.ids)
	if spawned != nil {
		ev.Spawned = 1
		s.logger.Debug("enemy spawned", "id", spawned.ID, "x", spawned.Pos.X, "y", spawned.Pos.Y, "speed", spawned.Speed)
	}

	if s.state == state.StatePlaying && !s.player.IsAlive() {
		s.state = state.StateGameOver
		ev.PlayerDied = true
		s.logger.Info("player died", "score", s.score, "frame", s.frame)
	}

	snap := s.Snapshot()
	snap.Events = ev
	return snap
}

// fire turns fire intents into live bullets
func (s *Session) fire(intents []system.FireIntent) {
	for _, fi := range intents {
		s.bullets = append(s.bullets, entity.NewBullet(s.ids.Next(), fi.Origin, fi.Velocity, fi.Owner))
	}
}

// Snapshot returns the current state with no events
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:       s.frame,
		State:       s.state,
		Score:       s.score,
		FieldWidth:  s.field.Width,
		FieldHeight: s.field.Height,
		Player:      viewPlayer(s.player),
		Enemies:     viewEnemies(s.enemies),
		Bullets:     viewBullets(s.bullets),
	}
}

// State returns the session's lifecycle state
func (s *Session) State() state.GameState {
	return s.state
}

// Score returns the number of enemies killed since the last restart
func (s *Session) Score() int {
	return s.score
}

// Frame returns the number of steps taken since the last restart
func (s *Session) Frame() uint64 {
	return s.frame
}

// Field returns the play field
func (s *Session) Field() entity.Field {
	return s.field
}
