package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// nolint
func main() {
	var cfg Config
	var verbose bool
	flag.IntVar(&cfg.Operations, "i", 1_000_000, "Operations count")
	flag.Uint64Var(&cfg.KeySpace, "k", 100_000, "Key space size")
	flag.Uint64Var(&cfg.Seed, "seed", uint64(time.Now().UnixNano()), "Random seed")
	flag.BoolVar(&cfg.Wide, "wide", false, "Use 128-bit keys")
	flag.IntVar(&cfg.CheckEvery, "check", 100_000, "Validate tree invariants every N operations (0 disables)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	if cfg.KeySpace == 0 || cfg.Operations < 0 {
		log.Error().Uint64("keys", cfg.KeySpace).Int("operations", cfg.Operations).Msg("invalid parameters")
		os.Exit(2)
	}

	log.Info().Uint64("seed", cfg.Seed).Bool("wide", cfg.Wide).Int("operations", cfg.Operations).Msg("start execution")

	handler := &Counter{}
	s := time.Now()
	stats, err := Run(cfg, handler, log)
	e := time.Now()
	if err != nil {
		log.Error().Err(err).Uint64("seed", cfg.Seed).Msg("stress run failed")
		os.Exit(1)
	}

	handler.PrintStatistics()
	fmt.Printf("Adds: %d, removes: %d, lookups: %d, rejected: %d\n", stats.Adds, stats.Removes, stats.Lookups, stats.Rejected)
	fmt.Printf("Final size: %d, height: %d\n", stats.Size, stats.Height)

	rps := float64(cfg.Operations) * float64(time.Second) / float64(e.Sub(s))

	fmt.Printf("RPS: %.5f\n", rps)
}
