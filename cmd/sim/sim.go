package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/arena/internal/application/autopilot"
	"github.com/younwookim/arena/internal/application/session"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/application/system"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// Result summarizes a headless run
type Result struct {
	Frames     int
	Deaths     int
	Kills      int
	BestScore  int
	FinalScore int
	FinalState state.GameState
	Digest     string
}

// Simulate plays frames steps of dt with the autopilot
func Simulate(cfg *config.GameConfig, seed int64, frames int, dt float64, logger *slog.Logger) (Result, error) {
	sess := session.New(cfg, system.NewRandSampler(seed), session.WithLogger(logger))
	pilot := autopilot.New(90, 40)

	var res Result
	snap := sess.Snapshot()
	for i := 0; i < frames; i++ {
		snap = sess.Step(dt, pilot.Next(snap))
		res.Kills += snap.Events.Kills
		if snap.Events.PlayerDied {
			res.Deaths++
		}
		res.BestScore = max(res.BestScore, snap.Score)
	}

	digest, err := snap.Digest()
	if err != nil {
		return Result{}, fmt.Errorf("failed to digest final snapshot: %w", err)
	}

	res.Frames = frames
	res.FinalScore = snap.Score
	res.FinalState = snap.State
	res.Digest = digest
	return res, nil
}
