package session

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/domain/entity"
)

// Snapshot is the read-only view of one frame handed to the presentation layer
type Snapshot struct {
	Frame       uint64          `msgpack:"frame"`
	State       state.GameState `msgpack:"state"`
	Score       int             `msgpack:"score"`
	FieldWidth  float64         `msgpack:"fw"`
	FieldHeight float64         `msgpack:"fh"`

	Player  PlayerView   `msgpack:"player"`
	Enemies []EnemyView  `msgpack:"enemies"`
	Bullets []BulletView `msgpack:"bullets"`

	// Events is what happened during the step that produced this snapshot
	Events Events `msgpack:"events"`
}

type PlayerView struct {
	Pos       entity.Vec2 `msgpack:"pos"`
	Facing    float64     `msgpack:"facing"`
	Health    int         `msgpack:"hp"`
	MaxHealth int         `msgpack:"maxHp"`
	Alive     bool        `msgpack:"alive"`
	FireTimer float64     `msgpack:"fireTimer"`
}

type EnemyView struct {
	ID        entity.EntityID `msgpack:"id"`
	Pos       entity.Vec2     `msgpack:"pos"`
	Speed     float64         `msgpack:"speed"`
	Health    int             `msgpack:"hp"`
	MaxHealth int             `msgpack:"maxHp"`
	FireTimer float64         `msgpack:"fireTimer"`
}

type BulletView struct {
	ID    entity.EntityID `msgpack:"id"`
	Pos   entity.Vec2     `msgpack:"pos"`
	Vel   entity.Vec2     `msgpack:"vel"`
	Owner entity.Owner    `msgpack:"owner"`
}

// Events counts what happened in a single step. Front ends turn these into
// sound and visual cues.
type Events struct {
	PlayerShots int  `msgpack:"playerShots"`
	EnemyShots  int  `msgpack:"enemyShots"`
	EnemyHits   int  `msgpack:"enemyHits"`
	PlayerHits  int  `msgpack:"playerHits"`
	Kills       int  `msgpack:"kills"`
	Spawned     int  `msgpack:"spawned"`
	PlayerDied  bool `msgpack:"playerDied"`
}

// Any reports whether anything happened
func (e Events) Any() bool {
	return e != Events{}
}

// Digest returns a hex sha256 over the msgpack encoding of the snapshot.
// Two sessions fed the same seed, config and inputs produce equal digests.
func (s Snapshot) Digest() (string, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Field returns the play field the snapshot was taken in
func (s Snapshot) Field() entity.Field {
	return entity.Field{Width: s.FieldWidth, Height: s.FieldHeight}
}

func viewPlayer(p *entity.Player) PlayerView {
	return PlayerView{
		Pos:       p.Pos,
		Facing:    p.Facing,
		Health:    p.Health,
		MaxHealth: p.MaxHealth,
		Alive:     p.Alive,
		FireTimer: p.FireTimer,
	}
}

func viewEnemies(enemies []*entity.Enemy) []EnemyView {
	views := make([]EnemyView, 0, len(enemies))
	for _, e := range enemies {
		views = append(views, EnemyView{
			ID:        e.ID,
			Pos:       e.Pos,
			Speed:     e.Speed,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			FireTimer: e.FireTimer,
		})
	}
	return views
}

func viewBullets(bullets []*entity.Bullet) []BulletView {
	views := make([]BulletView, 0, len(bullets))
	for _, b := range bullets {
		views = append(views, BulletView{
			ID:    b.ID,
			Pos:   b.Pos,
			Vel:   b.Vel,
			Owner: b.Owner(),
		})
	}
	return views
}
