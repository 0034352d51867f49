package policy

import (
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// handStrength estimates a 0-1 strength for the hole cards given the board
// dealt so far. Before the flop it blends the starting-hand percentile with
// structural heuristics; after the flop the made-hand category dominates.
func handStrength(hole, board []deck.Card) float64 {
	if len(hole) != 2 {
		return 0
	}
	if len(board) < 3 {
		return preflopStrength(hole[0], hole[1])
	}
	return postflopStrength(hole, board)
}

// preflopStrength averages the percentile table with a heuristic built
// from pair rank, high card, connectedness and suitedness.
func preflopStrength(c1, c2 deck.Card) float64 {
	percentile := deck.HandPercentile(c1, c2)

	var heuristic float64
	if c1.Rank == c2.Rank {
		// Pairs map onto the top half of the scale, aces highest.
		heuristic = 0.5 + float64(c1.Rank-deck.Two)/24
	} else {
		high, low := c1.Rank, c2.Rank
		if low > high {
			high, low = low, high
		}

		heuristic = float64(high-deck.Two) / 24

		switch gap := int(high - low - 1); {
		case gap == 0:
			heuristic += 0.2
		case gap == 1:
			heuristic += 0.15
		case gap == 2:
			heuristic += 0.1
		}
		if c1.Suit == c2.Suit {
			heuristic += 0.1
		}
		if low >= deck.Jack {
			heuristic += 0.1
		}
	}
	if heuristic > 1 {
		heuristic = 1
	}

	return (percentile + heuristic) / 2
}

// postflopStrength scores the made hand by category, then adjusts for how
// much the hole cards actually contribute to it.
func postflopStrength(hole, board []deck.Card) float64 {
	cards := make([]deck.Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)

	rank, err := evaluator.Evaluate(cards)
	if err != nil {
		return 0
	}
	strength := float64(rank.Category) / float64(evaluator.RoyalFlush)

	contribution := holeContribution(hole, board, rank)
	return strength*0.8 + contribution*0.2
}

// holeContribution scores how much the hole cards matter: 1.0 when they
// improve on playing the board, 0.5 when they pair it, 0.2 when the board
// plays itself.
func holeContribution(hole, board []deck.Card, full evaluator.Rank) float64 {
	if len(board) >= 5 {
		boardRank, err := evaluator.Evaluate(board)
		if err == nil && full.Compare(boardRank) > 0 {
			return 1.0
		}
	}
	for _, h := range hole {
		for _, b := range board {
			if h.Rank == b.Rank {
				return 0.5
			}
		}
	}
	if hole[0].Rank == hole[1].Rank {
		return 1.0
	}
	if len(board) < 5 {
		// Board not complete yet; a made hand this early usually
		// involves the hole cards.
		if full.Category >= evaluator.TwoPair {
			return 1.0
		}
	}
	return 0.2
}
