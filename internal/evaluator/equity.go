package evaluator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// EquityResult holds the outcome of a Monte Carlo equity estimation
type EquityResult struct {
	Equity  float64 // win probability plus tie share, 0-1
	Wins    int
	Ties    int
	Samples int
}

// Equity estimates the probability that the hole cards win at showdown
// against the given number of opponents holding random cards, by Monte Carlo
// sampling of opponent hands and board runouts. Samples are split across
// worker goroutines, each with its own seed-derived RNG so results are
// deterministic for a fixed seed regardless of scheduling.
func Equity(ctx context.Context, hole []deck.Card, board []deck.Card, opponents, samples int, seed int64) (EquityResult, error) {
	if len(hole) != 2 {
		return EquityResult{}, fmt.Errorf("equity requires exactly 2 hole cards, got %d", len(hole))
	}
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("board cannot exceed 5 cards, got %d", len(board))
	}
	if opponents < 1 || samples < 1 {
		return EquityResult{}, fmt.Errorf("opponents and samples must be positive")
	}
	// Each opponent needs 2 cards and the runout up to 5, all drawn from
	// the 50 cards outside the hole. More than 22 opponents cannot be dealt.
	if opponents*2+(5-len(board)) > 52-2-len(board) {
		return EquityResult{}, fmt.Errorf("cannot deal %d opponents from the deck, maximum is 22", opponents)
	}

	used := make(map[deck.Card]bool, len(hole)+len(board))
	for _, c := range append(append([]deck.Card{}, hole...), board...) {
		if used[c] {
			return EquityResult{}, fmt.Errorf("duplicate card %v", c)
		}
		used[c] = true
	}

	// Remaining cards available for sampling
	stub := make([]deck.Card, 0, 52-len(used))
	for suit := deck.Spades; suit <= deck.Clubs; suit++ {
		for rank := deck.Two; rank <= deck.Ace; rank++ {
			c := deck.NewCard(rank, suit)
			if !used[c] {
				stub = append(stub, c)
			}
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > samples {
		workers = samples
	}

	results := make([]EquityResult, workers)
	g, ctx := errgroup.WithContext(ctx)

	per := samples / workers
	extra := samples % workers
	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		rng := randutil.New(randutil.Derive(seed, w))
		g.Go(func() error {
			r, err := sampleEquity(ctx, hole, board, stub, opponents, n, rng)
			if err != nil {
				return err
			}
			results[w] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return EquityResult{}, err
	}

	var total EquityResult
	for _, r := range results {
		total.Wins += r.Wins
		total.Ties += r.Ties
		total.Samples += r.Samples
	}
	if total.Samples > 0 {
		total.Equity = (float64(total.Wins) + float64(total.Ties)/2) / float64(total.Samples)
	}
	return total, nil
}

func sampleEquity(ctx context.Context, hole, board, stub []deck.Card, opponents, samples int, rng *rand.Rand) (EquityResult, error) {
	var res EquityResult
	needed := len(board) // cards already on board
	draw := make([]deck.Card, len(stub))

	for i := 0; i < samples; i++ {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
		}

		// Partial Fisher-Yates: shuffle just enough cards for the
		// opponents' holes and the board runout.
		copy(draw, stub)
		want := opponents*2 + (5 - needed)
		for j := 0; j < want; j++ {
			k := j + rng.IntN(len(draw)-j)
			draw[j], draw[k] = draw[k], draw[j]
		}

		fullBoard := append(append([]deck.Card{}, board...), draw[opponents*2:want]...)

		our, err := Evaluate(append(append([]deck.Card{}, hole...), fullBoard...))
		if err != nil {
			return res, err
		}

		best := 1 // 1 = we win outright so far
		for o := 0; o < opponents; o++ {
			opp := draw[o*2 : o*2+2]
			theirs, err := Evaluate(append(append([]deck.Card{}, opp...), fullBoard...))
			if err != nil {
				return res, err
			}
			switch our.Compare(theirs) {
			case -1:
				best = -1
			case 0:
				if best == 1 {
					best = 0
				}
			}
			if best == -1 {
				break
			}
		}

		res.Samples++
		switch best {
		case 1:
			res.Wins++
		case 0:
			res.Ties++
		}
	}

	return res, nil
}
