package config

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Field   FieldConfig   `json:"field"`
	Player  PlayerConfig  `json:"player"`
	Enemy   EnemyConfig   `json:"enemy"`
	Spawner SpawnerConfig `json:"spawner"`
	Session SessionConfig `json:"session"`
	Bullet  BulletConfig  `json:"bullet"`
	Audio   AudioConfig   `json:"audio"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// FieldConfig is the play-field rectangle in field units
type FieldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	Speed        float64 `json:"speed"`
	MaxHealth    int     `json:"maxHealth"`
	Size         float64 `json:"size"`         // visual size; hit radius is Size/2
	FireCooldown float64 `json:"fireCooldown"` // seconds between shots
	BulletSpeed  float64 `json:"bulletSpeed"`
}

// HitRadius is the distance under which a bullet strikes an actor
func (p PlayerConfig) HitRadius() float64 {
	return p.Size / 2
}

type EnemyConfig struct {
	MaxHealth    int     `json:"maxHealth"`
	FireCooldown float64 `json:"fireCooldown"`
	BulletSpeed  float64 `json:"bulletSpeed"`

	// MinEngageRange suppresses enemy fire while closer than this to the
	// player. 0 disables the check.
	MinEngageRange float64 `json:"minEngageRange"`

	// Roster is the fixed starting population
	Roster []EnemySpawnConfig `json:"roster"`
}

type EnemySpawnConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

type SpawnerConfig struct {
	LowWaterMark int     `json:"lowWaterMark"`
	Margin       float64 `json:"margin"`
	MinSpeed     float64 `json:"minSpeed"`
	MaxSpeed     float64 `json:"maxSpeed"`
}

// Fire modes
const (
	FireContinuous = "continuous" // held button fires whenever the cooldown allows
	FireEdge       = "edge"       // only the press edge fires
)

type SessionConfig struct {
	FreezeOnGameOver bool   `json:"freezeOnGameOver"`
	FireMode         string `json:"fireMode"`
	Seed             int64  `json:"seed"` // 0 = seed from clock
}

type BulletConfig struct {
	Size float64 `json:"size"` // visual size only
}

type AudioConfig struct {
	Enabled      bool    `json:"enabled"`
	SampleRate   int     `json:"sampleRate"`
	MasterVolume float64 `json:"masterVolume"`
}
