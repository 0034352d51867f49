package game

import (
	"github.com/lox/holdem/internal/deck"
)

// HandHistory is the record of one completed hand
type HandHistory struct {
	HandID    string
	Button    int
	Board     []deck.Card
	Pot       int
	Winners   []int
	Awards    []PotAward
	Showdown  bool // false when the hand ended on folds
	Events    []Event
	Stacks    map[string]int // player ID -> chips after the hand
	PlayerIDs []string       // hand seat -> player ID
}

// historyFromHand captures a completed hand's record
func historyFromHand(h *HandState) HandHistory {
	hist := HandHistory{
		HandID:   h.ID,
		Button:   h.button,
		Board:    h.Board(),
		Winners:  h.Winners(),
		Awards:   h.Awards(),
		Showdown: len(h.ranks) > 0,
		Events:   h.Events(),
		Stacks:   make(map[string]int, len(h.players)),
	}
	for _, award := range hist.Awards {
		hist.Pot += award.Amount
	}
	for _, p := range h.players {
		hist.Stacks[p.ID] = p.Chips
		hist.PlayerIDs = append(hist.PlayerIDs, p.ID)
	}
	return hist
}
