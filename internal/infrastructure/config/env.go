package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override arena.json
const (
	EnvFreezeOnGameOver = "ARENA_FREEZE_ON_GAME_OVER"
	EnvFireMode         = "ARENA_FIRE_MODE"
	EnvMinEngageRange   = "ARENA_MIN_ENGAGE_RANGE"
	EnvSeed             = "ARENA_SEED"
)

// LoadDotEnv loads variables from the given .env files (default ".env").
// A missing file is not an error; values already in the environment win.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv overrides session settings from the process environment
func ApplyEnv(cfg *GameConfig) error {
	if v, ok := os.LookupEnv(EnvFreezeOnGameOver); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvFreezeOnGameOver, v, err)
		}
		cfg.Session.FreezeOnGameOver = b
	}

	if v, ok := os.LookupEnv(EnvFireMode); ok {
		cfg.Session.FireMode = v
	}

	if v, ok := os.LookupEnv(EnvMinEngageRange); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvMinEngageRange, v, err)
		}
		cfg.Enemy.MinEngageRange = f
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Session.Seed = n
	}

	return nil
}
