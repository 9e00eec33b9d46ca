// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/arena/internal/application/scene"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/audio"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG          = color.RGBA{26, 26, 46, 255}
	colorBorder      = color.RGBA{80, 80, 100, 255}
	colorPlayer      = color.RGBA{100, 200, 100, 255}
	colorEnemy       = color.RGBA{200, 100, 100, 255}
	colorPlayerShot  = color.RGBA{255, 240, 160, 255}
	colorEnemyShot   = color.RGBA{255, 100, 100, 255}
	colorHealthBG    = color.RGBA{60, 60, 60, 255}
	colorHealthFG    = color.RGBA{100, 200, 100, 255}
	colorEnemyHealth = color.RGBA{230, 80, 80, 255}
	colorText        = color.RGBA{230, 230, 240, 255}
)

// Sprites are the actor images; nil entries fall back to plain shapes
type Sprites struct {
	Player *ebiten.Image
	Enemy  *ebiten.Image
}

// NewSprites uploads rasterized images to the GPU
func NewSprites(player, enemy image.Image) Sprites {
	var s Sprites
	if player != nil {
		s.Player = ebiten.NewImageFromImage(player)
	}
	if enemy != nil {
		s.Enemy = ebiten.NewImageFromImage(enemy)
	}
	return s
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	session *session.Session
	input   InputSource
	sprites Sprites
	cues    audio.CuePlayer
	logger  *slog.Logger

	snap    session.Snapshot
	paused  bool
	screenW int
	screenH int
	scaleX  float64 // field units to screen pixels
	scaleY  float64
}

// New creates a new Playing scene driving sess with input
func New(cfg *config.GameConfig, sess *session.Session, input InputSource, sprites Sprites, cues audio.CuePlayer, logger *slog.Logger) *Playing {
	if cues == nil {
		cues = audio.Silent{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	screenW, screenH := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	return &Playing{
		config:  cfg,
		session: sess,
		input:   input,
		sprites: sprites,
		cues:    cues,
		logger:  logger,
		snap:    sess.Snapshot(),
		screenW: screenW,
		screenH: screenH,
		scaleX:  float64(screenW) / cfg.Field.Width,
		scaleY:  float64(screenH) / cfg.Field.Height,
	}
}

// Update advances the session by one frame (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
		p.logger.Debug("pause toggled", "paused", p.paused)
	}
	if p.paused {
		return nil, nil
	}

	prev := p.snap.State
	in := p.input.Next(p.snap)
	p.snap = p.session.Step(dt, in)

	for _, c := range cuesFor(prev, p.snap) {
		p.cues.Play(c)
	}

	return nil, nil // nil = stay on this scene
}

// cuesFor maps one frame's events to sound cues, loudest first
func cuesFor(prev state.GameState, snap session.Snapshot) []audio.Cue {
	if prev == state.StateGameOver && snap.State == state.StatePlaying {
		return []audio.Cue{audio.CueRestart}
	}

	ev := snap.Events
	var cues []audio.Cue
	if ev.PlayerDied {
		cues = append(cues, audio.CueDeath)
	}
	if ev.Kills > 0 {
		cues = append(cues, audio.CueKill)
	}
	if ev.PlayerHits > 0 {
		cues = append(cues, audio.CuePlayerHit)
	}
	if ev.EnemyHits > ev.Kills {
		cues = append(cues, audio.CueEnemyHit)
	}
	if ev.PlayerShots > 0 {
		cues = append(cues, audio.CueShot)
	}
	if ev.EnemyShots > 0 {
		cues = append(cues, audio.CueEnemyShot)
	}
	if ev.Spawned > 0 {
		cues = append(cues, audio.CueSpawn)
	}
	return cues
}

// Snapshot returns the most recent frame
func (p *Playing) Snapshot() session.Snapshot {
	return p.snap
}

// Paused reports whether the simulation is halted
func (p *Playing) Paused() bool {
	return p.paused
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	fw, fh := p.toScreen(entity.V(p.snap.FieldWidth, p.snap.FieldHeight))
	vector.StrokeRect(screen, 0, 0, float32(fw), float32(fh), 2, colorBorder, false)

	p.drawEnemies(screen)
	p.drawBullets(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch {
	case p.snap.State == state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case p.paused:
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) toScreen(v entity.Vec2) (float64, float64) {
	return v.X * p.scaleX, v.Y * p.scaleY
}

func (p *Playing) actorSize() (float64, float64) {
	return p.config.Player.Size * p.scaleX, p.config.Player.Size * p.scaleY
}

// drawSprite draws img covering the actor box at pos, rotated about its center
func (p *Playing) drawSprite(screen, img *ebiten.Image, pos entity.Vec2, angle float64) {
	w, h := p.actorSize()
	x, y := p.toScreen(pos)
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x+w/2, y+h/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.snap.Player
	if p.sprites.Player != nil {
		p.drawSprite(screen, p.sprites.Player, pl.Pos, pl.Facing)
	} else {
		x, y := p.toScreen(pl.Pos)
		w, h := p.actorSize()
		ebitenutil.DrawRect(screen, x, y, w, h, colorPlayer)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	w, h := p.actorSize()
	for _, e := range p.snap.Enemies {
		x, y := p.toScreen(e.Pos)
		if p.sprites.Enemy != nil {
			p.drawSprite(screen, p.sprites.Enemy, e.Pos, 0)
		} else {
			ebitenutil.DrawRect(screen, x, y, w, h, colorEnemy)
		}

		// HP bar above the enemy
		ratio := float64(e.Health) / float64(e.MaxHealth)
		ebitenutil.DrawRect(screen, x, y-6, w, 3, colorHealthBG)
		ebitenutil.DrawRect(screen, x, y-6, w*ratio, 3, colorEnemyHealth)
	}
}

func (p *Playing) drawBullets(screen *ebiten.Image) {
	r := float32(p.config.Bullet.Size / 2 * p.scaleX)
	for _, b := range p.snap.Bullets {
		c := colorEnemyShot
		if b.Owner == entity.OwnerPlayer {
			c = colorPlayerShot
		}
		x, y := p.toScreen(b.Pos)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, c, true)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	pl := p.snap.Player
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := float64(pl.Health) / float64(pl.MaxHealth)
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	hp := fmt.Sprintf("HP %d/%d", pl.Health, pl.MaxHealth)
	text.Draw(screen, hp, basicfont.Face7x13, int(barX+barW+8), int(barY+barH), colorText)

	score := fmt.Sprintf("Score: %d", p.snap.Score)
	text.Draw(screen, score, basicfont.Face7x13, p.screenW-100, 20, colorText)

	ebitenutil.DebugPrint(screen, "WASD: Move | Mouse: Aim | LClick/Space: Fire | R: Restart | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	face := basicfont.Face7x13
	text.Draw(screen, "YOU DIED", face, p.screenW/2-28, p.screenH/2-20, colorText)
	msg := fmt.Sprintf("Score: %d    Press R to restart", p.snap.Score)
	text.Draw(screen, msg, face, p.screenW/2-len(msg)*7/2, p.screenH/2+4, colorText)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("arena started", "field", fmt.Sprintf("%vx%v", p.config.Field.Width, p.config.Field.Height))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.logger.Info("arena closed", "score", p.snap.Score, "frame", p.snap.Frame)
}
