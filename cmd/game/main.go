// Command game plays the arena in a desktop window.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/arena/configs"
	"github.com/younwookim/arena/internal/application/autopilot"
	"github.com/younwookim/arena/internal/application/game"
	"github.com/younwookim/arena/internal/application/scene/playing"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/audio"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/logging"
	"github.com/younwookim/arena/internal/infrastructure/sprite"
)

func main() {
	configDir := flag.String("config", "", "directory containing arena.json (default: embedded)")
	seed := flag.Int64("seed", 0, "spawner seed (0 = config or clock)")
	mute := flag.Bool("mute", false, "disable sound")
	demo := flag.Bool("demo", false, "let the autopilot play")
	flag.Parse()

	logger := logging.Setup(os.Stdout)

	if err := config.LoadDotEnv(); err != nil {
		logger.Error("failed to load .env", "err", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = time.Now().UnixNano()
	}
	logger.Info("config loaded", "seed", cfg.Session.Seed, "fireMode", cfg.Session.FireMode, "demo", *demo)

	sprites := loadSprites(cfg, logger)

	var cues audio.CuePlayer = audio.Silent{}
	if !*mute {
		cues = audio.Open(cfg.Audio, logger)
	}
	if sp, ok := cues.(*audio.SpeakerPlayer); ok {
		defer sp.Close()
	}

	sess := session.New(cfg, system.NewRandSampler(cfg.Session.Seed), session.WithLogger(logger))

	screenW, screenH := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	var input playing.InputSource
	if *demo {
		input = autopilot.New(90, 40)
	} else {
		input = playing.NewKeyboardMouse(cfg.Field.Width, cfg.Field.Height, screenW, screenH)
	}

	scene := playing.New(cfg, sess, input, sprites, cues, logger)
	g := game.New(scene, screenW, screenH, cfg.Display.Framerate, logger)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	return config.NewFSLoader(configs.FS, "configs").LoadAll()
}

// loadSprites rasterizes actor art at a multiple of the actor size; shapes are
// drawn instead if the art cannot be loaded.
func loadSprites(cfg *config.GameConfig, logger *slog.Logger) playing.Sprites {
	set, err := sprite.Load(int(cfg.Player.Size) * 2)
	if err != nil {
		logger.Warn("sprites disabled", "err", err)
		return playing.Sprites{}
	}
	return playing.NewSprites(set.Player, set.Enemy)
}
