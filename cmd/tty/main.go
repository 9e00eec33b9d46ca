// Command tty plays the arena in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/arena/configs"
	"github.com/younwookim/arena/internal/application/autopilot"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "directory containing arena.json (default: embedded)")
	seed := flag.Int64("seed", 0, "spawner seed (0 = config or clock)")
	demo := flag.Bool("demo", false, "let the autopilot play")
	logPath := flag.String("log", "", "write logs to this file (the terminal is in use)")
	hold := flag.Int("hold", 8, "frames a key press stays held")
	flag.Parse()

	// stdout belongs to the screen; logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	logger := logging.Setup(logOut)

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := loadConfig(*configDir)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = time.Now().UnixNano()
	}
	logger.Info("config loaded", "seed", cfg.Session.Seed, "fireMode", cfg.Session.FireMode, "demo", *demo)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sess := session.New(cfg, system.NewRandSampler(cfg.Session.Seed), session.WithLogger(logger))
	renderer := NewRenderer(screen, cfg.Field.Width, cfg.Field.Height, cfg.Player.Size)
	controls := NewControls(renderer.Grid(), *hold)

	var input InputSource
	if *demo {
		input = autopilot.New(90, 40)
	}

	framerate := cfg.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	app := NewApp(screen, sess, controls, input, renderer, 1/float64(framerate), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	return config.NewFSLoader(configs.FS, "configs").LoadAll()
}
