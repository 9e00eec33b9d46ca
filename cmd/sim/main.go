// Command sim runs the arena headless under the autopilot and prints a
// digest of the final frame. Equal seeds and configs print equal digests.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/younwookim/arena/configs"
	"github.com/younwookim/arena/internal/infrastructure/config"
	"github.com/younwookim/arena/internal/infrastructure/logging"
)

func main() {
	configDir := flag.String("config", "", "directory containing arena.json (default: embedded)")
	frames := flag.Int("frames", 3600, "number of frames to simulate")
	seed := flag.Int64("seed", 1, "spawner seed")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame")
	flag.Parse()

	logger := logging.Setup(os.Stderr)

	if err := config.LoadDotEnv(); err != nil {
		logger.Error("failed to load .env", "err", err)
		os.Exit(1)
	}

	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		loader = config.NewFSLoader(configs.FS, "configs")
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	res, err := Simulate(cfg, *seed, *frames, *dt, logger)
	if err != nil {
		logger.Error("simulation failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("frames  %d\n", res.Frames)
	fmt.Printf("kills   %d\n", res.Kills)
	fmt.Printf("deaths  %d\n", res.Deaths)
	fmt.Printf("best    %d\n", res.BestScore)
	fmt.Printf("score   %d\n", res.FinalScore)
	fmt.Printf("state   %s\n", res.FinalState)
	fmt.Printf("digest  %s\n", res.Digest)
}
