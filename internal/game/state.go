package game

import (
	"github.com/lox/holdem/internal/deck"
)

// TableState is a snapshot of a hand from one player's perspective. Hole
// cards other than the viewer's are omitted.
type TableState struct {
	HandID     string
	Street     Street
	Board      []deck.Card
	Pot        int
	Pots       []PotState
	CurrentBet int
	MinRaise   int
	SmallBlind int
	BigBlind   int
	Button     int
	ToAct      int
	Viewer     int
	Players    []PlayerState
}

// PotState describes one pot tier in a snapshot
type PotState struct {
	Amount   int
	Eligible []int
}

// PlayerState describes one seat in a snapshot
type PlayerState struct {
	Seat       int
	ID         string
	Name       string
	Chips      int
	Bet        int
	TotalBet   int
	Folded     bool
	AllIn      bool
	HoleCards  []deck.Card
	LastAction string
}

// StateFor builds the hand snapshot visible to viewer. Pass a negative
// viewer for an omniscient snapshot with every hand revealed.
func (h *HandState) StateFor(viewer int) TableState {
	pots := ComputePots(h.players)
	potStates := make([]PotState, len(pots))
	for i, p := range pots {
		potStates[i] = PotState{Amount: p.Amount, Eligible: p.Eligible}
	}

	return TableState{
		HandID:     h.ID,
		Street:     h.street,
		Board:      h.Board(),
		Pot:        PotTotal(h.players),
		Pots:       potStates,
		CurrentBet: h.betting.CurrentBet,
		MinRaise:   h.betting.MinRaise,
		SmallBlind: h.smallBlind,
		BigBlind:   h.bigBlind,
		Button:     h.button,
		ToAct:      h.ToAct(),
		Viewer:     viewer,
		Players:    playerStates(h.players, viewer),
	}
}

func playerStates(players []*Player, viewer int) []PlayerState {
	states := make([]PlayerState, len(players))
	for i, p := range players {
		s := PlayerState{
			Seat:       p.Seat,
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			Bet:        p.Bet,
			TotalBet:   p.TotalBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			LastAction: p.LastAction,
		}
		if viewer < 0 || viewer == i {
			s.HoleCards = append([]deck.Card(nil), p.HoleCards...)
		}
		states[i] = s
	}
	return states
}
