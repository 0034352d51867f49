package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// EquityCmd estimates showdown equity for two hole cards, optionally with
// a partial board.
type EquityCmd struct {
	Hole      []string `arg:"" help:"Exactly 2 hole cards, then 0-5 board cards"`
	Opponents int      `short:"o" default:"1" help:"Number of opponents"`
	Samples   int      `short:"n" default:"100000" help:"Monte Carlo samples"`
	Seed      *int64   `help:"Deterministic RNG seed (random when omitted)"`
}

func (c *EquityCmd) Run(logger *log.Logger) error {
	cards, err := deck.ParseCards(c.Hole...)
	if err != nil {
		return err
	}
	if len(cards) < 2 {
		return fmt.Errorf("need 2 hole cards, got %d", len(cards))
	}
	hole, board := cards[:2], cards[2:]

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	result, err := evaluator.Equity(ctx, hole, board, c.Opponents, c.Samples, seed)
	if err != nil {
		return err
	}

	logger.Debug("equity computed",
		"samples", result.Samples,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	fmt.Printf("hole:  %s %s\n", hole[0], hole[1])
	if len(board) > 0 {
		fmt.Printf("board:")
		for _, card := range board {
			fmt.Printf(" %s", card)
		}
		fmt.Println()
	}
	fmt.Printf("vs %d opponent(s) over %d samples\n\n", c.Opponents, result.Samples)
	fmt.Printf("equity: %.2f%%  (wins %d, ties %d)\n",
		result.Equity*100, result.Wins, result.Ties)
	return nil
}
