package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a session
func (c *GameConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Player.MaxHealth < 1 {
		return fmt.Errorf("%w: player maxHealth must be >= 1, got %d", ErrInvalidConfig, c.Player.MaxHealth)
	}
	if c.Enemy.MaxHealth < 1 {
		return fmt.Errorf("%w: enemy maxHealth must be >= 1, got %d", ErrInvalidConfig, c.Enemy.MaxHealth)
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("%w: player size must be positive, got %v", ErrInvalidConfig, c.Player.Size)
	}
	if c.Spawner.MinSpeed > c.Spawner.MaxSpeed {
		return fmt.Errorf("%w: spawner speed range [%v, %v) is inverted", ErrInvalidConfig, c.Spawner.MinSpeed, c.Spawner.MaxSpeed)
	}
	if c.Spawner.Margin < 0 || 2*c.Spawner.Margin > c.Field.Width || 2*c.Spawner.Margin > c.Field.Height {
		return fmt.Errorf("%w: spawner margin %v leaves no spawn area", ErrInvalidConfig, c.Spawner.Margin)
	}
	if c.Enemy.MinEngageRange < 0 {
		return fmt.Errorf("%w: enemy minEngageRange must be >= 0, got %v", ErrInvalidConfig, c.Enemy.MinEngageRange)
	}
	switch c.Session.FireMode {
	case FireContinuous, FireEdge:
	default:
		return fmt.Errorf("%w: unknown fire mode %q", ErrInvalidConfig, c.Session.FireMode)
	}
	return nil
}
