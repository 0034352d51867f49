package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/simulator"
)

// SimulateCmd runs policy-vs-policy simulations and prints per-player
// statistics.
type SimulateCmd struct {
	Config string `short:"c" type:"existingfile" help:"HCL config file (defaults to a built-in 6-max lineup)"`
	Hands  int    `help:"Override hands per table"`
	Tables int    `help:"Override parallel table count"`
	Seed   *int64 `help:"Deterministic RNG seed (random when omitted)"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Table.Hands = c.Hands
	}
	if c.Tables > 0 {
		cfg.Table.Tables = c.Tables
	}

	seed := cfg.Table.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", seed)
	} else {
		logger.Info("using deterministic seed", "seed", seed)
	}

	seats := make([]simulator.SeatConfig, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		seats[i] = simulator.SeatConfig{
			ID:    seat.Name,
			Name:  seat.Name,
			Chips: seat.Chips,
			NewPolicy: func(policySeed int64) game.DecisionMaker {
				p, err := seat.Policy(policySeed)
				if err != nil {
					// Config validation already vetted the names.
					panic(err)
				}
				return p
			},
		}
	}

	sim, err := simulator.New(simulator.Config{
		Seats:      seats,
		Hands:      cfg.Table.Hands,
		Tables:     cfg.Table.Tables,
		SmallBlind: cfg.Table.SmallBlind,
		BigBlind:   cfg.Table.BigBlind,
		Seed:       randutil.Derive(seed, 0),
		Rebuy:      cfg.Table.Rebuy,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	totalHands := cfg.Table.Hands * cfg.Table.Tables
	fmt.Printf("Simulated %d hands across %d table(s) at %d/%d in %s\n\n",
		totalHands, cfg.Table.Tables, cfg.Table.SmallBlind, cfg.Table.BigBlind,
		elapsed.Round(time.Millisecond))

	fmt.Printf("%-12s %8s %10s %10s %12s %8s %8s\n",
		"player", "hands", "bb/hand", "stderr", "95% CI", "wins", "sd-wins")
	for _, id := range report.PlayerIDs() {
		stats := report.Players[id]
		lo, hi := stats.ConfidenceInterval95()
		fmt.Printf("%-12s %8d %10.3f %10.3f %5.2f..%5.2f %8d %8d\n",
			id, stats.Hands, stats.Mean(), stats.StdError(), lo, hi,
			stats.Wins(), stats.ShowdownWins)
	}
	return nil
}
