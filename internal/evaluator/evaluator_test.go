package evaluator

import (
	"errors"
	"testing"

	"github.com/lox/holdem/internal/deck"
)

func cards(t *testing.T, strs ...string) []deck.Card {
	t.Helper()
	cs, err := deck.ParseCards(strs...)
	if err != nil {
		t.Fatalf("parse cards: %v", err)
	}
	return cs
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     []string
		category  Category
		tiebreaks []deck.Rank
	}{
		{"royal flush", []string{"Th", "Jh", "Qh", "Kh", "Ah"}, RoyalFlush, nil},
		{"straight flush", []string{"5s", "6s", "7s", "8s", "9s"}, StraightFlush, []deck.Rank{deck.Nine}},
		{"steel wheel", []string{"As", "2s", "3s", "4s", "5s"}, StraightFlush, []deck.Rank{deck.Five}},
		{"four of a kind", []string{"2c", "2d", "2h", "2s", "9c"}, FourOfAKind, []deck.Rank{deck.Two, deck.Nine}},
		{"full house", []string{"Kc", "Kd", "Kh", "Ts", "Tc"}, FullHouse, []deck.Rank{deck.King, deck.Ten}},
		{"flush", []string{"2h", "5h", "9h", "Jh", "Kh"}, Flush, []deck.Rank{deck.King, deck.Jack, deck.Nine, deck.Five, deck.Two}},
		{"straight", []string{"6c", "7d", "8h", "9s", "Tc"}, Straight, []deck.Rank{deck.Ten}},
		{"wheel", []string{"Ac", "2d", "3h", "4s", "5c"}, Straight, []deck.Rank{deck.Five}},
		{"trips", []string{"7c", "7d", "7h", "Ks", "2c"}, ThreeOfAKind, []deck.Rank{deck.Seven, deck.King, deck.Two}},
		{"two pair", []string{"Jc", "Jd", "4h", "4s", "Ac"}, TwoPair, []deck.Rank{deck.Jack, deck.Four, deck.Ace}},
		{"pair", []string{"8c", "8d", "Kh", "5s", "2c"}, Pair, []deck.Rank{deck.Eight, deck.King, deck.Five, deck.Two}},
		{"high card", []string{"Ac", "Jd", "8h", "5s", "2c"}, HighCard, []deck.Rank{deck.Ace, deck.Jack, deck.Eight, deck.Five, deck.Two}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rank, err := Evaluate(cards(t, tt.cards...))
			if err != nil {
				t.Fatalf("Evaluate error: %v", err)
			}
			if rank.Category != tt.category {
				t.Errorf("category = %v, want %v", rank.Category, tt.category)
			}
			if len(tt.tiebreaks) > 0 {
				if len(rank.Tiebreaks) != len(tt.tiebreaks) {
					t.Fatalf("tiebreaks = %v, want %v", rank.Tiebreaks, tt.tiebreaks)
				}
				for i := range tt.tiebreaks {
					if rank.Tiebreaks[i] != tt.tiebreaks[i] {
						t.Errorf("tiebreak[%d] = %v, want %v", i, rank.Tiebreaks[i], tt.tiebreaks[i])
					}
				}
			}
		})
	}
}

func TestEvaluateSevenCardsPicksBestFive(t *testing.T) {
	t.Parallel()

	// Board pairs plus hole trips: the full house must win over two pair
	rank, err := Evaluate(cards(t, "Kc", "Kd", "Kh", "Ts", "Tc", "2d", "7h"))
	if err != nil {
		t.Fatal(err)
	}
	if rank.Category != FullHouse {
		t.Errorf("category = %v, want Full House", rank.Category)
	}

	// The flush inside 7 cards must be found even when a straight exists
	rank, err = Evaluate(cards(t, "2h", "3h", "4h", "5h", "6c", "7d", "9h"))
	if err != nil {
		t.Fatal(err)
	}
	if rank.Category != Flush {
		t.Errorf("category = %v, want Flush", rank.Category)
	}
}

func TestWheelRanksBelowSixHighStraight(t *testing.T) {
	t.Parallel()

	wheel, _ := Evaluate(cards(t, "Ac", "2d", "3h", "4s", "5c"))
	sixHigh, _ := Evaluate(cards(t, "2c", "3d", "4h", "5s", "6c"))
	tenHigh, _ := Evaluate(cards(t, "6c", "7d", "8h", "9s", "Tc"))

	if wheel.Compare(sixHigh) != -1 {
		t.Error("wheel should lose to 6-high straight")
	}
	if wheel.Compare(tenHigh) != -1 {
		t.Error("wheel should lose to 10-high straight")
	}
	if wheel.Category != Straight {
		t.Errorf("wheel category = %v, want Straight", wheel.Category)
	}
}

func TestWheelNeverAceHigh(t *testing.T) {
	t.Parallel()

	// A-2-3-4-5 plus K, Q available: K-high straight does not exist, the best
	// straight is still the 5-high wheel.
	rank, err := Evaluate(cards(t, "Ac", "2d", "3h", "4s", "5c", "Kd", "Qh"))
	if err != nil {
		t.Fatal(err)
	}
	if rank.Category != Straight || rank.Tiebreaks[0] != deck.Five {
		t.Errorf("got %v %v, want 5-high straight", rank.Category, rank.Tiebreaks)
	}
}

func TestInsufficientCards(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(cards(t, "Ac", "2d", "3h", "4s"))
	if !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("expected ErrInsufficientCards, got %v", err)
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	t.Parallel()

	hands := [][]string{
		{"Th", "Jh", "Qh", "Kh", "Ah"},
		{"5s", "6s", "7s", "8s", "9s"},
		{"2c", "2d", "2h", "2s", "9c"},
		{"Kc", "Kd", "Kh", "Ts", "Tc"},
		{"2h", "5h", "9h", "Jh", "Kh"},
		{"6c", "7d", "8h", "9s", "Tc"},
		{"Ac", "2d", "3h", "4s", "5c"},
		{"7c", "7d", "7h", "Ks", "2c"},
		{"Jc", "Jd", "4h", "4s", "Ac"},
		{"8c", "8d", "Kh", "5s", "2c"},
		{"Ac", "Jd", "8h", "5s", "2c"},
	}

	ranks := make([]Rank, len(hands))
	for i, h := range hands {
		r, err := Evaluate(cards(t, h...))
		if err != nil {
			t.Fatal(err)
		}
		ranks[i] = r
	}

	for i := range ranks {
		for j := range ranks {
			cij := ranks[i].Compare(ranks[j])
			cji := ranks[j].Compare(ranks[i])
			if cij != -cji {
				t.Errorf("compare not antisymmetric for hands %d,%d: %d vs %d", i, j, cij, cji)
			}
			if i == j && cij != 0 {
				t.Errorf("hand %d does not tie itself", i)
			}
		}
	}

	// The fixture list is ordered strongest first, so every earlier hand
	// must beat every later one.
	for i := 0; i < len(ranks); i++ {
		for j := i + 1; j < len(ranks); j++ {
			if ranks[i].Compare(ranks[j]) != 1 {
				t.Errorf("hand %d should beat hand %d (%v vs %v)", i, j, ranks[i], ranks[j])
			}
		}
	}
}

func TestKickerTiebreaks(t *testing.T) {
	t.Parallel()

	a, _ := Evaluate(cards(t, "8c", "8d", "Ah", "5s", "2c")) // pair 8s, ace kicker
	b, _ := Evaluate(cards(t, "8h", "8s", "Kh", "5d", "2d")) // pair 8s, king kicker
	if a.Compare(b) != 1 {
		t.Error("ace kicker should beat king kicker")
	}

	c, _ := Evaluate(cards(t, "2c", "2d", "2h", "2s", "Ac"))
	d, _ := Evaluate(cards(t, "2c", "2d", "2h", "2s", "9c"))
	if c.Compare(d) != 1 {
		t.Error("quads with ace kicker should beat quads with nine kicker")
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards []string
		want  string
	}{
		{[]string{"Th", "Jh", "Qh", "Kh", "Ah"}, "Royal Flush"},
		{[]string{"Kc", "Kd", "Kh", "Ts", "Tc"}, "Full House: Kings over Tens"},
		{[]string{"Jc", "Jd", "4h", "4s", "Ac"}, "Two Pair: Jacks and Fours"},
		{[]string{"8c", "8d", "Kh", "5s", "2c"}, "Pair of Eights"},
		{[]string{"Ac", "2d", "3h", "4s", "5c"}, "Straight: Five High"},
	}

	for _, tt := range tests {
		rank, err := Evaluate(cards(t, tt.cards...))
		if err != nil {
			t.Fatal(err)
		}
		if got := rank.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
