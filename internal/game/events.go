package game

import (
	"time"

	"github.com/lox/holdem/internal/deck"
)

// Event is something observable that happened during a hand. Events are
// appended in order and carry the clock time they were emitted at.
type Event interface {
	Type() string
	Time() time.Time
}

type baseEvent struct {
	At time.Time
}

func (e baseEvent) Time() time.Time { return e.At }

// HandStartEvent opens a hand
type HandStartEvent struct {
	baseEvent
	HandID     string
	Button     int
	SmallBlind int
	BigBlind   int
	Players    []PlayerState
}

func (HandStartEvent) Type() string { return "hand_start" }

// BlindPostedEvent records a forced blind bet
type BlindPostedEvent struct {
	baseEvent
	Seat   int
	Amount int
	Big    bool
}

func (BlindPostedEvent) Type() string { return "blind_posted" }

// HoleCardsDealtEvent records a player receiving their hole cards
type HoleCardsDealtEvent struct {
	baseEvent
	Seat  int
	Cards []deck.Card
}

func (HoleCardsDealtEvent) Type() string { return "hole_cards_dealt" }

// PlayerActedEvent records a voluntary action
type PlayerActedEvent struct {
	baseEvent
	Seat   int
	Action Action
	// Amount is the chips that actually moved into the pot for this
	// action, zero for checks and folds.
	Amount int
	AllIn  bool
}

func (PlayerActedEvent) Type() string { return "player_acted" }

// StreetDealtEvent records community cards being dealt
type StreetDealtEvent struct {
	baseEvent
	Street Street
	Cards  []deck.Card // cards added this street
	Board  []deck.Card // full board after dealing
}

func (StreetDealtEvent) Type() string { return "street_dealt" }

// ShowdownEvent records the hands revealed at showdown
type ShowdownEvent struct {
	baseEvent
	Board []deck.Card
	Hands []ShownHand
}

func (ShowdownEvent) Type() string { return "showdown" }

// ShownHand is one player's revealed hand at showdown
type ShownHand struct {
	Seat        int
	HoleCards   []deck.Card
	Description string
}

// PotAwardedEvent records one pot tier being paid out
type PotAwardedEvent struct {
	baseEvent
	PotIndex int
	Amount   int
	Winners  []int
	Shares   map[int]int
}

func (PotAwardedEvent) Type() string { return "pot_awarded" }

// HandEndEvent closes a hand
type HandEndEvent struct {
	baseEvent
	HandID  string
	Pot     int
	Winners []int
	Stacks  map[int]int // seat -> chips after settlement
}

func (HandEndEvent) Type() string { return "hand_end" }
