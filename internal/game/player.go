package game

import (
	"github.com/lox/holdem/internal/deck"
)

// Player represents one seat in the current hand. Chips persist across
// hands; everything else is reset when a new hand starts. Chips only
// decrease through placeBet and only increase through collectWinnings.
type Player struct {
	Seat       int    // position within the current hand, 0-based
	ID         string // stable identifier across hands
	Name       string
	Chips      int
	HoleCards  []deck.Card
	Folded     bool
	AllIn      bool
	Bet        int // contribution this street, reset every street
	TotalBet   int // contribution this hand, never decreases within a hand
	LastAction string
}

// Active returns true if the player can still take voluntary actions
func (p *Player) Active() bool {
	return !p.Folded && !p.AllIn
}

// resetForHand clears per-hand state while preserving chips
func (p *Player) resetForHand() {
	p.HoleCards = nil
	p.Folded = false
	p.AllIn = false
	p.Bet = 0
	p.TotalBet = 0
	p.LastAction = ""
}

// placeBet moves up to amount from the stack into the current bet,
// capping at the stack and marking the player all-in when it empties.
// Returns the amount actually moved.
func (p *Player) placeBet(amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	return amount
}

// collectWinnings adds a pot share to the stack
func (p *Player) collectWinnings(amount int) {
	p.Chips += amount
}
