package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadArena loads arena.json on top of the defaults, so a partial file
// only overrides the fields it names.
func (l *Loader) LoadArena() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "arena.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read arena.json: %w", err)
	}

	cfg := Default()
	// Roster is replaced wholesale, never merged element-wise
	cfg.Enemy.Roster = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena.json: %w", err)
	}
	if cfg.Enemy.Roster == nil {
		cfg.Enemy.Roster = Default().Enemy.Roster
	}

	return cfg, nil
}

// LoadAll loads arena.json, applies environment overrides and validates the result
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadArena()
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s/arena.json: %w", l.basePath, err)
	}

	return cfg, nil
}
