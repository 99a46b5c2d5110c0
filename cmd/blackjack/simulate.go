package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays automated rounds with basic strategy
type SimulateCmd struct {
	Rounds  int   `short:"n" default:"10000" help:"Number of rounds to play"`
	Bet     int   `default:"100" help:"Bet per round"`
	Seed    int64 `help:"Base seed (0 means time-based)"`
	Workers int   `help:"Parallel workers (default: GOMAXPROCS)"`
	Debug   bool  `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Seed:    seed,
		Workers: workers,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(stats.Summary())
	fmt.Printf("elapsed: %s (seed %d)\n", time.Since(start).Round(time.Millisecond), seed)
	return nil
}
