package policy

import (
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
)

// CallingStation checks when it can and calls everything else. Useful as a
// simulation baseline: it realises equity without ever applying pressure.
func CallingStation() game.DecisionMaker {
	return game.DecisionFunc(func(state game.TableState, valid []game.ValidAction) (game.Action, int) {
		if _, ok := find(valid, game.Check); ok {
			return game.Check, 0
		}
		if a, ok := find(valid, game.Call); ok {
			return game.Call, a.Min
		}
		if a, ok := find(valid, game.AllIn); ok {
			return game.AllIn, a.Min
		}
		return game.Fold, 0
	})
}

// AlwaysFold folds whenever facing a bet and checks otherwise. It only
// ever loses blinds, which makes it a convenient control seat.
func AlwaysFold() game.DecisionMaker {
	return game.DecisionFunc(func(state game.TableState, valid []game.ValidAction) (game.Action, int) {
		if _, ok := find(valid, game.Check); ok {
			return game.Check, 0
		}
		return game.Fold, 0
	})
}

// Random picks uniformly from the valid actions, raising to a uniform
// amount within bounds. Stress-tests engine legality more than it plays.
func Random(seed int64) game.DecisionMaker {
	rng := randutil.New(seed)
	return game.DecisionFunc(func(state game.TableState, valid []game.ValidAction) (game.Action, int) {
		if len(valid) == 0 {
			return game.Fold, 0
		}
		va := valid[rng.IntN(len(valid))]
		amount := va.Min
		if va.Action == game.Raise && va.Max > va.Min {
			amount = va.Min + rng.IntN(va.Max-va.Min+1)
		}
		return va.Action, amount
	})
}
