// Package main is the entry point for DungeonSight.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonsight/internal/fov"
	"github.com/samdwyer/dungeonsight/internal/game"
	"github.com/samdwyer/dungeonsight/internal/mapdump"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

var directions = map[rune][2]int{
	'n': {0, -1},
	's': {0, 1},
	'e': {1, 0},
	'w': {-1, 0},
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	radius := flag.Int("radius", 0, "FOV radius (0 is unlimited)")
	algorithm := flag.String("fov", "", "FOV algorithm: shadowcast or ray")
	walk := flag.String("walk", "", "moves to make from the spawn point, e.g. \"nneew\"")
	levels := flag.Int("levels", 1, "number of dungeons to generate, dumping each")
	reveal := flag.Bool("reveal", false, "draw unexplored tiles too")
	colorMode := flag.String("color", "auto", "colour output: auto, always or never")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycombEnv()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.DefaultConfig()
	if err != nil {
		log.Fatalf("Failed to load defaults: %v", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	// Flags given on the command line win over the environment.
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "radius":
			cfg.FOVRadius = *radius
		case "fov":
			cfg.FOVAlgorithm, flagErr = fov.ParseAlgorithm(*algorithm)
		}
	})
	if flagErr != nil {
		log.Fatalf("Invalid -fov: %v", flagErr)
	}

	opts := mapdump.Options{Reveal: *reveal, Legend: true}
	switch *colorMode {
	case "auto":
		opts.Color = term.IsTerminal(int(os.Stdout.Fd()))
	case "always":
		opts.Color = true
	case "never":
	default:
		log.Fatalf("Invalid -color %q", *colorMode)
	}

	s, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	for level := 1; level <= *levels; level++ {
		if level > 1 {
			if err := s.Regenerate(ctx); err != nil {
				log.Fatalf("Failed to generate level %d: %v", level, err)
			}
		}
		if err := walkPath(ctx, s, *walk); err != nil {
			log.Fatalf("Walk failed: %v", err)
		}
		if err := mapdump.Write(os.Stdout, s, opts); err != nil {
			log.Fatalf("Failed to write map: %v", err)
		}
	}
}

// walkPath moves the player one step per letter, refreshing visibility after
// each step. Blocked steps are skipped.
func walkPath(ctx context.Context, s *game.Session, path string) error {
	for _, r := range strings.ToLower(path) {
		d, ok := directions[r]
		if !ok {
			return fmt.Errorf("unknown direction %q", r)
		}
		if !s.MoveBy(ctx, d[0], d[1]) {
			continue
		}
		if _, err := s.Refresh(ctx); err != nil {
			return err
		}
	}
	return nil
}
