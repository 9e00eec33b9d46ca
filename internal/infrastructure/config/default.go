package config

// Default returns the built-in arena configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "Top-Down Shooter",
		},
		Field: FieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Speed:        200,
			MaxHealth:    5,
			Size:         32,
			FireCooldown: 0.2,
			BulletSpeed:  500,
		},
		Enemy: EnemyConfig{
			MaxHealth:    3,
			FireCooldown: 1.0,
			BulletSpeed:  300,
			Roster: []EnemySpawnConfig{
				{X: 100, Y: 100, Speed: 50},
				{X: 700, Y: 400, Speed: 60},
			},
		},
		Spawner: SpawnerConfig{
			LowWaterMark: 3,
			Margin:       50,
			MinSpeed:     40,
			MaxSpeed:     80,
		},
		Session: SessionConfig{
			FreezeOnGameOver: false,
			FireMode:         FireContinuous,
		},
		Bullet: BulletConfig{Size: 6},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.4,
		},
	}
}
