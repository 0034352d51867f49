// Package evaluator ranks poker hands. Given 5-7 cards it finds the best
// 5-card hand by enumerating every 5-card subset (at most C(7,5)=21) and
// keeping the strongest, which keeps the tie-break rules trivially correct
// for every category including the wheel.
package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/holdem/internal/deck"
)

// ErrInsufficientCards is returned when fewer than 5 cards are supplied.
// Correct street sequencing makes this unreachable from the engine, so it
// indicates a programming error in the caller.
var ErrInsufficientCards = errors.New("need at least 5 cards to evaluate a hand")

// Category is a poker hand category, ordered weakest to strongest
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Rank is the strength of an evaluated hand: a category plus the ordered
// tie-break values for that category. Two Ranks compare first by category,
// then by tiebreaks lexicographically highest-first.
type Rank struct {
	Category  Category
	Tiebreaks []deck.Rank
}

// Compare returns 1 if r beats other, -1 if other beats r, 0 on an exact
// tie. Missing tiebreak elements compare lower.
func (r Rank) Compare(other Rank) int {
	if r.Category != other.Category {
		if r.Category > other.Category {
			return 1
		}
		return -1
	}
	n := len(r.Tiebreaks)
	if len(other.Tiebreaks) > n {
		n = len(other.Tiebreaks)
	}
	for i := 0; i < n; i++ {
		a, b := deck.Rank(0), deck.Rank(0)
		if i < len(r.Tiebreaks) {
			a = r.Tiebreaks[i]
		}
		if i < len(other.Tiebreaks) {
			b = other.Tiebreaks[i]
		}
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name
func (r Rank) String() string {
	return r.Category.String()
}

// Describe returns a readable description like "Full House: Kings over Tens"
func (r Rank) Describe() string {
	name := func(i int) string {
		if i < len(r.Tiebreaks) {
			return r.Tiebreaks[i].Name()
		}
		return "?"
	}

	switch r.Category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush, Straight:
		return fmt.Sprintf("%s: %s High", r.Category, name(0))
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind: %ss", name(0))
	case FullHouse:
		return fmt.Sprintf("Full House: %ss over %ss", name(0), name(1))
	case Flush, HighCard:
		return fmt.Sprintf("%s: %s High", r.Category, name(0))
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind: %ss", name(0))
	case TwoPair:
		return fmt.Sprintf("Two Pair: %ss and %ss", name(0), name(1))
	case Pair:
		return fmt.Sprintf("Pair of %ss", name(0))
	default:
		return r.Category.String()
	}
}

// Evaluate returns the rank of the best 5-card hand within the supplied
// 5-7 cards.
func Evaluate(cards []deck.Card) (Rank, error) {
	if len(cards) < 5 {
		return Rank{}, fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	}

	best := Rank{Category: -1}
	var combo [5]deck.Card

	// Enumerate 5-card subsets
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						combo[0], combo[1], combo[2], combo[3], combo[4] =
							cards[a], cards[b], cards[c], cards[d], cards[e]
						r := score5(combo)
						if best.Category < 0 || r.Compare(best) > 0 {
							best = r
						}
					}
				}
			}
		}
	}

	return best, nil
}

// score5 ranks exactly five cards
func score5(cards [5]deck.Card) Rank {
	ranks := make([]deck.Rank, 5)
	counts := make(map[deck.Rank]int, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		counts[c.Rank]++
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	straight, straightHigh := checkStraight(counts)

	if straight && flush {
		if straightHigh == deck.Ace {
			return Rank{Category: RoyalFlush}
		}
		return Rank{Category: StraightFlush, Tiebreaks: []deck.Rank{straightHigh}}
	}

	var quads, trips deck.Rank
	var pairs []deck.Rank
	for r, c := range counts {
		switch c {
		case 4:
			quads = r
		case 3:
			trips = r
		case 2:
			pairs = append(pairs, r)
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i] > pairs[j] })

	kickers := func(exclude ...deck.Rank) []deck.Rank {
		out := make([]deck.Rank, 0, 5)
	next:
		for _, r := range ranks {
			for _, ex := range exclude {
				if r == ex {
					continue next
				}
			}
			out = append(out, r)
		}
		return out
	}

	switch {
	case quads != 0:
		return Rank{Category: FourOfAKind, Tiebreaks: append([]deck.Rank{quads}, kickers(quads)[0])}
	case trips != 0 && len(pairs) > 0:
		return Rank{Category: FullHouse, Tiebreaks: []deck.Rank{trips, pairs[0]}}
	case flush:
		return Rank{Category: Flush, Tiebreaks: ranks}
	case straight:
		return Rank{Category: Straight, Tiebreaks: []deck.Rank{straightHigh}}
	case trips != 0:
		return Rank{Category: ThreeOfAKind, Tiebreaks: append([]deck.Rank{trips}, kickers(trips)...)}
	case len(pairs) >= 2:
		tb := []deck.Rank{pairs[0], pairs[1]}
		return Rank{Category: TwoPair, Tiebreaks: append(tb, kickers(pairs[0], pairs[1])...)}
	case len(pairs) == 1:
		return Rank{Category: Pair, Tiebreaks: append([]deck.Rank{pairs[0]}, kickers(pairs[0])...)}
	default:
		return Rank{Category: HighCard, Tiebreaks: ranks}
	}
}

// checkStraight reports whether the distinct ranks form a run of five,
// returning the high card. The wheel A-2-3-4-5 counts as a 5-high straight.
func checkStraight(counts map[deck.Rank]int) (bool, deck.Rank) {
	if len(counts) != 5 {
		return false, 0
	}

	lo, hi := deck.Ace, deck.Two
	for r := range counts {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	if hi-lo == 4 {
		return true, hi
	}

	// Wheel: A-2-3-4-5, ranks as 5-high (never ace-high)
	if counts[deck.Ace] == 1 && counts[deck.Two] == 1 && counts[deck.Three] == 1 &&
		counts[deck.Four] == 1 && counts[deck.Five] == 1 {
		return true, deck.Five
	}

	return false, 0
}
