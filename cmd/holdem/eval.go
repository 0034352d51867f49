package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// EvalCmd evaluates a hand given as card strings like "Ah Kd Qs Jc Th"
type EvalCmd struct {
	Cards []string `arg:"" help:"5 to 7 cards in compact form (As, Td, 9h...)"`
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	cards, err := deck.ParseCards(c.Cards...)
	if err != nil {
		return err
	}

	rank, err := evaluator.Evaluate(cards)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", rank.Describe())
	for _, card := range cards {
		fmt.Printf("%s ", card)
	}
	fmt.Println()
	return nil
}
