package policy

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
)

func quiet() *log.Logger { return log.New(io.Discard) }

func testState(t *testing.T, street game.Street, hole string, board []string, pot, currentBet, myBet, chips int) game.TableState {
	t.Helper()
	holeCards, err := deck.ParseCards(hole[:2], hole[2:])
	require.NoError(t, err)
	boardCards, err := deck.ParseCards(board...)
	require.NoError(t, err)

	return game.TableState{
		Street:     street,
		Board:      boardCards,
		Pot:        pot,
		CurrentBet: currentBet,
		MinRaise:   10,
		BigBlind:   10,
		Viewer:     0,
		ToAct:      0,
		Players: []game.PlayerState{
			{Seat: 0, Chips: chips, Bet: myBet, HoleCards: holeCards},
			{Seat: 1, Chips: 1000, Bet: currentBet},
		},
	}
}

func validFor(state game.TableState) []game.ValidAction {
	me := state.Players[0]
	toCall := state.CurrentBet - me.Bet
	actions := []game.ValidAction{{Action: game.Fold}}
	if toCall <= 0 {
		actions = append(actions, game.ValidAction{Action: game.Check})
	} else if toCall < me.Chips {
		actions = append(actions, game.ValidAction{Action: game.Call, Min: toCall, Max: toCall})
	}
	minTo := state.CurrentBet + state.MinRaise
	maxTo := me.Bet + me.Chips
	if maxTo >= minTo {
		actions = append(actions, game.ValidAction{Action: game.Raise, Min: minTo, Max: maxTo})
	}
	actions = append(actions, game.ValidAction{Action: game.AllIn, Min: me.Chips, Max: me.Chips})
	return actions
}

func assertLegal(t *testing.T, valid []game.ValidAction, action game.Action, amount int) {
	t.Helper()
	for _, va := range valid {
		if va.Action == action {
			if action == game.Raise {
				assert.GreaterOrEqual(t, amount, va.Min)
				assert.LessOrEqual(t, amount, va.Max)
			}
			return
		}
	}
	t.Fatalf("action %s not in valid set", action)
}

func TestDecideAlwaysLegal(t *testing.T) {
	personalities := []Personality{Conservative, Aggressive, Balanced, Loose, Maniac, Tight}
	skills := []SkillLevel{Rookie, Amateur, Intermediate, Advanced}

	states := []game.TableState{
		testState(t, game.Preflop, "AsAd", nil, 15, 10, 0, 1000),
		testState(t, game.Preflop, "7s2d", nil, 15, 10, 0, 1000),
		testState(t, game.Flop, "AsAd", []string{"Ah", "7c", "2d"}, 100, 0, 0, 500),
		testState(t, game.Turn, "9s8s", []string{"Ah", "7c", "2d", "Kd"}, 200, 150, 0, 120),
		testState(t, game.River, "QhQd", []string{"Qs", "7c", "2d", "Kd", "3h"}, 400, 300, 100, 50),
	}

	seed := int64(0)
	for _, pers := range personalities {
		for _, skill := range skills {
			for _, state := range states {
				seed++
				p := New(pers, skill, WithSeed(seed), WithLogger(quiet()))
				valid := validFor(state)
				for i := 0; i < 25; i++ {
					action, amount := p.Decide(state, valid)
					assertLegal(t, valid, action, amount)
				}
			}
		}
	}
}

func TestDecideEmptyValidSetFolds(t *testing.T) {
	p := New(Balanced, Intermediate, WithSeed(1), WithLogger(quiet()))
	action, _ := p.Decide(testState(t, game.Preflop, "AsAd", nil, 15, 10, 0, 1000), nil)
	assert.Equal(t, game.Fold, action)
}

func TestManiacContinuesMoreThanConservative(t *testing.T) {
	// Weak hand facing a bet it isn't priced in for: continuing is
	// mostly down to bluff tendency.
	state := testState(t, game.Flop, "9s8d", []string{"Ah", "Kc", "2d"}, 100, 80, 0, 1000)
	valid := validFor(state)

	continues := func(pers Personality) int {
		count := 0
		for seed := int64(0); seed < 200; seed++ {
			p := New(pers, Advanced, WithSeed(seed), WithLogger(quiet()))
			if action, _ := p.Decide(state, valid); action != game.Fold {
				count++
			}
		}
		return count
	}

	assert.Greater(t, continues(Maniac), continues(Conservative))
}

func TestTightFoldsTrashToABet(t *testing.T) {
	state := testState(t, game.Flop, "7s2d", []string{"Ah", "Kc", "Qd"}, 100, 80, 0, 1000)
	valid := validFor(state)

	folds := 0
	for seed := int64(0); seed < 100; seed++ {
		p := New(Tight, Expert, WithSeed(seed), WithLogger(quiet()))
		if action, _ := p.Decide(state, valid); action == game.Fold {
			folds++
		}
	}
	assert.Greater(t, folds, 50, "tight policy should usually fold seven-deuce to a bet")
}

func TestExpertProfileIsStable(t *testing.T) {
	a := New(Aggressive, Expert, WithSeed(1), WithLogger(quiet()))
	b := New(Aggressive, Expert, WithSeed(2), WithLogger(quiet()))
	assert.Equal(t, a.Profile(), b.Profile(), "expert applies the preset without variance")
	assert.Equal(t, Aggressive.Profile(), a.Profile())
}

func TestRookieProfileVariesWithinBounds(t *testing.T) {
	base := Balanced.Profile()
	varied := false
	for seed := int64(0); seed < 50; seed++ {
		p := New(Balanced, Rookie, WithSeed(seed), WithLogger(quiet()))
		prof := p.Profile()

		assert.InDelta(t, base.Aggression, prof.Aggression, 30)
		assert.InDelta(t, base.BluffTendency, prof.BluffTendency, 40)
		assert.InDelta(t, base.CallThreshold, prof.CallThreshold, 30)
		assert.InDelta(t, base.FoldThreshold, prof.FoldThreshold, 30)
		if prof != base {
			varied = true
		}
	}
	assert.True(t, varied)
}

func TestTraitDrift(t *testing.T) {
	p := New(Balanced, Expert, WithSeed(1), WithLogger(quiet()), WithDrift())
	start := p.Profile()

	for i := 0; i < 3; i++ {
		p.UpdateAfterHand(true)
	}
	assert.Equal(t, start.Aggression+6, p.Profile().Aggression)
	assert.Equal(t, start.BluffTendency+3, p.Profile().BluffTendency)

	for i := 0; i < 3; i++ {
		p.UpdateAfterHand(false)
	}
	assert.Equal(t, start.Aggression+3, p.Profile().Aggression)

	// Without drift the profile never moves.
	q := New(Balanced, Expert, WithSeed(1), WithLogger(quiet()))
	q.UpdateAfterHand(true)
	assert.Equal(t, Balanced.Profile(), q.Profile())
}

func TestDeterministicWithSeed(t *testing.T) {
	state := testState(t, game.Turn, "9s8s", []string{"Ah", "7c", "2d", "Kd"}, 200, 150, 0, 500)
	valid := validFor(state)

	run := func() []game.Action {
		p := New(Loose, Amateur, WithSeed(77), WithLogger(quiet()))
		var actions []game.Action
		for i := 0; i < 20; i++ {
			action, _ := p.Decide(state, valid)
			actions = append(actions, action)
		}
		return actions
	}
	assert.Equal(t, run(), run())
}

func TestPoliciesPlayFullHandsLegally(t *testing.T) {
	table := game.NewTable(5, 10,
		game.WithTableSeed(123),
		game.WithLogger(quiet()),
	)
	require.NoError(t, table.AddPlayer("a", "a", 1000, New(Maniac, Rookie, WithSeed(1), WithLogger(quiet()))))
	require.NoError(t, table.AddPlayer("b", "b", 1000, New(Tight, Expert, WithSeed(2), WithLogger(quiet()))))
	require.NoError(t, table.AddPlayer("c", "c", 1000, CallingStation()))
	require.NoError(t, table.AddPlayer("d", "d", 1000, Random(3)))

	for i := 0; i < 30; i++ {
		if _, err := table.PlayHand(); err != nil {
			require.ErrorIs(t, err, game.ErrNotEnoughPlayers)
			break
		}
		total := 0
		for _, s := range table.Seats() {
			total += s.Chips
		}
		require.Equal(t, 4000, total)
	}
}
