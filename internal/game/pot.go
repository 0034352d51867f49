package game

import (
	"sort"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// Pot is one pot tier: the main pot or a side pot. Eligible lists the hand
// seats that can win it. Chips contributed by folded players are absorbed
// into the tiers their contribution reaches, so the sum of all tier amounts
// always equals the sum of all players' hand contributions.
type Pot struct {
	Amount   int
	Eligible []int
}

// ComputePots splits the players' hand contributions into pot tiers.
// The distinct contribution levels of non-folded players define the tiers;
// each tier collects, from every player, the slice of their contribution
// that falls between the previous level and this one.
func ComputePots(players []*Player) []Pot {
	var levels []int
	seen := make(map[int]bool)
	for _, p := range players {
		if !p.Folded && p.TotalBet > 0 && !seen[p.TotalBet] {
			seen[p.TotalBet] = true
			levels = append(levels, p.TotalBet)
		}
	}
	sort.Ints(levels)

	if len(levels) == 0 {
		// Everyone folded or nothing contributed; sweep whatever is in
		// play into a single pot with no eligible winners.
		total := 0
		for _, p := range players {
			total += p.TotalBet
		}
		if total == 0 {
			return []Pot{{Amount: 0}}
		}
		return []Pot{{Amount: total}}
	}

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := Pot{}
		for _, p := range players {
			pot.Amount += clamp(p.TotalBet, level) - clamp(p.TotalBet, prev)
		}
		for _, p := range players {
			if !p.Folded && p.TotalBet >= level {
				pot.Eligible = append(pot.Eligible, p.Seat)
			}
		}
		pots = append(pots, pot)
		prev = level
	}

	// A folded player can never have contributed beyond the highest
	// non-folded level while the hand is live, but reconcile any
	// discrepancy into the main pot rather than lose chips.
	total := 0
	for _, p := range players {
		total += p.TotalBet
	}
	sum := 0
	for _, pot := range pots {
		sum += pot.Amount
	}
	if diff := total - sum; diff > 0 {
		pots[0].Amount += diff
	}

	return pots
}

// PotTotal returns the sum of all contributions in play this hand
func PotTotal(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.TotalBet
	}
	return total
}

// PotAward records how one pot tier was settled
type PotAward struct {
	Amount   int
	Eligible []int
	Winners  []int
	Shares   map[int]int // seat -> chips awarded from this tier
}

// settlePots awards each pot tier to the best-ranked eligible hand(s).
// Ties split the tier evenly; remainder chips go to the tied winners
// closest to the button in acting order, deterministically. Returns the
// awards and each shown player's rank, keyed by seat.
func settlePots(players []*Player, board []deck.Card, button int) ([]PotAward, map[int]evaluator.Rank, error) {
	ranks := make(map[int]evaluator.Rank)
	for _, p := range players {
		if p.Folded {
			continue
		}
		cards := make([]deck.Card, 0, len(p.HoleCards)+len(board))
		cards = append(cards, p.HoleCards...)
		cards = append(cards, board...)
		rank, err := evaluator.Evaluate(cards)
		if err != nil {
			return nil, nil, err
		}
		ranks[p.Seat] = rank
	}

	pots := ComputePots(players)
	awards := make([]PotAward, 0, len(pots))

	for _, pot := range pots {
		award := PotAward{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Shares:   make(map[int]int),
		}

		var winners []int
		for _, seat := range pot.Eligible {
			rank := ranks[seat]
			if len(winners) == 0 {
				winners = []int{seat}
				continue
			}
			switch rank.Compare(ranks[winners[0]]) {
			case 1:
				winners = []int{seat}
			case 0:
				winners = append(winners, seat)
			}
		}

		if len(winners) > 0 {
			// Order winners by distance from the button so remainder
			// chips land on the earliest seat(s) in acting order.
			n := len(players)
			sort.Slice(winners, func(i, j int) bool {
				return (winners[i]-button-1+2*n)%n < (winners[j]-button-1+2*n)%n
			})

			share := pot.Amount / len(winners)
			remainder := pot.Amount % len(winners)
			for i, seat := range winners {
				amount := share
				if i < remainder {
					amount++
				}
				award.Shares[seat] = amount
			}
		}
		award.Winners = winners
		awards = append(awards, award)
	}

	return awards, ranks, nil
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}
