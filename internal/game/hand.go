package game

import (
	"fmt"
	mrand "math/rand/v2"

	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/handid"
	"github.com/lox/holdem/internal/randutil"
)

// HandState drives a single hand from blinds through settlement. It is not
// safe for concurrent use; all mutation goes through ProcessAction.
type HandState struct {
	ID         string
	players    []*Player
	button     int
	smallBlind int
	bigBlind   int
	deck       *deck.Deck
	board      []deck.Card
	street     Street
	betting    *BettingRound
	toAct      int
	clock      quartz.Clock
	events     []Event
	awards     []PotAward
	ranks      map[int]evaluator.Rank
	winners    []int
}

// HandOption configures a new hand
type HandOption func(*HandState)

// WithDeck supplies a pre-built deck, used as-is without shuffling
func WithDeck(d *deck.Deck) HandOption {
	return func(h *HandState) { h.deck = d }
}

// WithSeed makes the hand's shuffle deterministic
func WithSeed(seed int64) HandOption {
	return func(h *HandState) {
		d := deck.New(randutil.New(seed))
		d.Shuffle()
		h.deck = d
	}
}

// WithClock supplies the clock used to stamp events
func WithClock(c quartz.Clock) HandOption {
	return func(h *HandState) { h.clock = c }
}

// WithID sets the hand's identifier
func WithID(id string) HandOption {
	return func(h *HandState) { h.ID = id }
}

// NewHand deals a new hand: blinds are posted, hole cards dealt and the
// preflop betting round opened. The button index selects the dealer seat;
// blinds and first-to-act follow from it, with the button posting the
// small blind when only two players are seated.
func NewHand(players []*Player, button, smallBlind, bigBlind int, opts ...HandOption) (*HandState, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if button < 0 || button >= len(players) {
		return nil, fmt.Errorf("button seat %d out of range", button)
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		return nil, fmt.Errorf("invalid blinds %d/%d", smallBlind, bigBlind)
	}

	h := &HandState{
		players:    players,
		button:     button,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		street:     Preflop,
		toAct:      -1,
		ranks:      make(map[int]evaluator.Rank),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.ID == "" {
		h.ID = handid.New()
	}
	if h.clock == nil {
		h.clock = quartz.NewReal()
	}
	if h.deck == nil {
		d := deck.New(randutil.New(mrand.Int64()))
		d.Shuffle()
		h.deck = d
	}

	for i, p := range h.players {
		p.Seat = i
		p.resetForHand()
		if p.Chips <= 0 {
			return nil, fmt.Errorf("seat %d has no chips", i)
		}
	}

	h.betting = NewBettingRound(len(players), bigBlind)

	h.emit(&HandStartEvent{
		baseEvent:  h.stamp(),
		HandID:     h.ID,
		Button:     button,
		SmallBlind: smallBlind,
		BigBlind:   bigBlind,
		Players:    playerStates(h.players, -1),
	})

	h.postBlinds()
	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	h.toAct = h.firstToActPreflop()
	if h.toAct == -1 || h.betting.Complete(h.players) {
		// Blinds put everyone all-in; run the board out.
		if err := h.advance(); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func (h *HandState) postBlinds() {
	n := len(h.players)
	sbSeat := (h.button + 1) % n
	bbSeat := (h.button + 2) % n
	if n == 2 {
		sbSeat = h.button
		bbSeat = (h.button + 1) % n
	}

	sbPosted := h.players[sbSeat].placeBet(h.smallBlind)
	h.emit(&BlindPostedEvent{baseEvent: h.stamp(), Seat: sbSeat, Amount: sbPosted})

	bbPosted := h.players[bbSeat].placeBet(h.bigBlind)
	h.emit(&BlindPostedEvent{baseEvent: h.stamp(), Seat: bbSeat, Amount: bbPosted, Big: true})

	// Blinds set the bet to match but do not count as having acted, so
	// the big blind keeps the option to raise when everyone just calls.
	h.betting.CurrentBet = sbPosted
	if bbPosted > sbPosted {
		h.betting.CurrentBet = bbPosted
	}
}

// dealHoleCards deals one card per player per pass, two passes, starting
// left of the button.
func (h *HandState) dealHoleCards() error {
	n := len(h.players)
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= n; i++ {
			p := h.players[(h.button+i)%n]
			card, err := h.deck.DealOne()
			if err != nil {
				return err
			}
			p.HoleCards = append(p.HoleCards, card)
		}
	}
	for i := 1; i <= n; i++ {
		p := h.players[(h.button+i)%n]
		h.emit(&HoleCardsDealtEvent{baseEvent: h.stamp(), Seat: p.Seat, Cards: append([]deck.Card(nil), p.HoleCards...)})
	}
	return nil
}

func (h *HandState) firstToActPreflop() int {
	n := len(h.players)
	from := (h.button + 3) % n // left of the big blind
	if n == 2 {
		from = h.button // button posts the small blind and acts first
	}
	return h.nextActive(from)
}

// nextActive returns the first player at or after seat who can still act,
// or -1 if nobody can.
func (h *HandState) nextActive(seat int) int {
	n := len(h.players)
	for i := 0; i < n; i++ {
		s := (seat + i) % n
		if h.players[s].Active() {
			return s
		}
	}
	return -1
}

// Street returns the current street
func (h *HandState) Street() Street { return h.street }

// Board returns the community cards dealt so far
func (h *HandState) Board() []deck.Card { return append([]deck.Card(nil), h.board...) }

// Button returns the dealer seat
func (h *HandState) Button() int { return h.button }

// Blinds returns the small and big blind sizes
func (h *HandState) Blinds() (int, int) { return h.smallBlind, h.bigBlind }

// ToAct returns the seat whose turn it is, or -1 when no action is pending
func (h *HandState) ToAct() int {
	if h.street >= Showdown {
		return -1
	}
	return h.toAct
}

// Players returns the hand's players, indexed by seat
func (h *HandState) Players() []*Player { return h.players }

// Complete reports whether the hand has been settled
func (h *HandState) Complete() bool { return h.street == HandComplete }

// Winners returns the seats that won at least one pot, settled hands only
func (h *HandState) Winners() []int { return append([]int(nil), h.winners...) }

// Awards returns the per-pot settlement, settled hands only
func (h *HandState) Awards() []PotAward { return h.awards }

// Ranks returns the evaluated rank of each shown hand, keyed by seat
func (h *HandState) Ranks() map[int]evaluator.Rank { return h.ranks }

// Pots returns the current pot tiers derived from contributions so far
func (h *HandState) Pots() []Pot { return ComputePots(h.players) }

// Pot returns the total chips in play this hand
func (h *HandState) Pot() int { return PotTotal(h.players) }

// Events returns the hand's event log in emission order
func (h *HandState) Events() []Event { return h.events }

// ValidActions returns the legal actions for a seat, nil when it is not
// that seat's turn.
func (h *HandState) ValidActions(seat int) []ValidAction {
	if h.street >= Showdown || seat != h.toAct {
		return nil
	}
	return h.betting.ValidActions(h.players[seat])
}

// ProcessAction applies one player action. For Raise, amount is the new
// street total being raised to; other actions ignore it. Invalid actions
// leave the hand unchanged.
func (h *HandState) ProcessAction(seat int, action Action, amount int) error {
	if h.street >= Showdown {
		return ErrHandComplete
	}
	if seat < 0 || seat >= len(h.players) || seat != h.toAct {
		return ErrNotPlayersTurn
	}

	p := h.players[seat]
	moved := 0

	switch action {
	case Fold:
		p.Folded = true

	case Check:
		if p.Bet < h.betting.CurrentBet {
			return ErrIllegalCheck
		}

	case Call:
		toCall := h.betting.CurrentBet - p.Bet
		if toCall <= 0 {
			return ErrInvalidAmount
		}
		moved = p.placeBet(toCall)

	case Raise:
		if amount <= h.betting.CurrentBet {
			return ErrInvalidAmount
		}
		additional := amount - p.Bet
		if additional <= 0 || additional > p.Chips {
			return ErrInvalidAmount
		}
		// A raise below the minimum is only legal when it commits the
		// whole stack.
		if amount < h.betting.CurrentBet+h.betting.MinRaise && additional < p.Chips {
			return ErrRaiseTooSmall
		}
		moved = p.placeBet(additional)
		h.applyRaise(seat)

	case AllIn:
		if p.Chips == 0 {
			return ErrInvalidAmount
		}
		moved = p.placeBet(p.Chips)
		if p.Bet > h.betting.CurrentBet {
			h.applyRaise(seat)
		}

	default:
		return ErrInvalidAmount
	}

	p.LastAction = action.String()
	h.betting.Acted[seat] = true

	h.emit(&PlayerActedEvent{
		baseEvent: h.stamp(),
		Seat:      seat,
		Action:    action,
		Amount:    moved,
		AllIn:     p.AllIn,
	})

	if remaining := h.notFolded(); len(remaining) == 1 {
		h.settleFoldWin(remaining[0])
		return nil
	}

	if h.betting.Complete(h.players) {
		return h.advance()
	}

	h.toAct = h.nextActive((seat + 1) % len(h.players))
	return nil
}

// applyRaise updates the bet to match after seat's street bet exceeded it.
// Any raise reopens the action to the other players.
func (h *HandState) applyRaise(seat int) {
	newTotal := h.players[seat].Bet
	if newTotal >= h.betting.CurrentBet+h.betting.MinRaise {
		h.betting.MinRaise = newTotal - h.betting.CurrentBet
	}
	h.betting.CurrentBet = newTotal
	h.betting.reopen(seat)
}

func (h *HandState) notFolded() []int {
	var seats []int
	for i, p := range h.players {
		if !p.Folded {
			seats = append(seats, i)
		}
	}
	return seats
}

// advance moves to the next street, dealing community cards as needed.
// When nobody can act the remaining streets are dealt straight through to
// showdown.
func (h *HandState) advance() error {
	for {
		var dealt []deck.Card
		var err error

		switch h.street {
		case Preflop:
			h.street = Flop
			if err = h.deck.Burn(); err == nil {
				dealt, err = h.deck.Deal(3)
			}
		case Flop:
			h.street = Turn
			if err = h.deck.Burn(); err == nil {
				dealt, err = h.deck.Deal(1)
			}
		case Turn:
			h.street = River
			if err = h.deck.Burn(); err == nil {
				dealt, err = h.deck.Deal(1)
			}
		case River:
			return h.settleShowdown()
		}
		if err != nil {
			return err
		}

		h.board = append(h.board, dealt...)
		for _, p := range h.players {
			p.Bet = 0
		}
		h.betting.ResetForStreet()

		h.emit(&StreetDealtEvent{
			baseEvent: h.stamp(),
			Street:    h.street,
			Cards:     dealt,
			Board:     h.Board(),
		})

		if h.betting.Complete(h.players) {
			continue
		}
		h.toAct = h.nextActive((h.button + 1) % len(h.players))
		return nil
	}
}

// settleFoldWin awards the whole pot to the last unfolded player
func (h *HandState) settleFoldWin(winner int) {
	total := PotTotal(h.players)
	h.players[winner].collectWinnings(total)
	h.winners = []int{winner}
	h.awards = []PotAward{{
		Amount:   total,
		Eligible: []int{winner},
		Winners:  []int{winner},
		Shares:   map[int]int{winner: total},
	}}

	h.emit(&PotAwardedEvent{
		baseEvent: h.stamp(),
		PotIndex:  0,
		Amount:    total,
		Winners:   []int{winner},
		Shares:    map[int]int{winner: total},
	})
	h.finish(total)
}

// settleShowdown evaluates the remaining hands and pays out every pot tier
func (h *HandState) settleShowdown() error {
	h.street = Showdown

	awards, ranks, err := settlePots(h.players, h.board, h.button)
	if err != nil {
		return err
	}
	h.awards = awards
	h.ranks = ranks

	var shown []ShownHand
	for _, p := range h.players {
		if p.Folded {
			continue
		}
		shown = append(shown, ShownHand{
			Seat:        p.Seat,
			HoleCards:   append([]deck.Card(nil), p.HoleCards...),
			Description: ranks[p.Seat].Describe(),
		})
	}
	h.emit(&ShowdownEvent{baseEvent: h.stamp(), Board: h.Board(), Hands: shown})

	total := 0
	winnerSet := make(map[int]bool)
	for i, award := range awards {
		total += award.Amount
		for seat, share := range award.Shares {
			h.players[seat].collectWinnings(share)
		}
		for _, w := range award.Winners {
			winnerSet[w] = true
		}
		h.emit(&PotAwardedEvent{
			baseEvent: h.stamp(),
			PotIndex:  i,
			Amount:    award.Amount,
			Winners:   award.Winners,
			Shares:    award.Shares,
		})
	}

	h.winners = h.winners[:0]
	for i := range h.players {
		if winnerSet[i] {
			h.winners = append(h.winners, i)
		}
	}

	h.finish(total)
	return nil
}

func (h *HandState) finish(pot int) {
	h.toAct = -1
	h.street = HandComplete

	stacks := make(map[int]int, len(h.players))
	for i, p := range h.players {
		stacks[i] = p.Chips
	}
	h.emit(&HandEndEvent{
		baseEvent: h.stamp(),
		HandID:    h.ID,
		Pot:       pot,
		Winners:   append([]int(nil), h.winners...),
		Stacks:    stacks,
	})
}

func (h *HandState) stamp() baseEvent {
	return baseEvent{At: h.clock.Now()}
}

func (h *HandState) emit(e Event) {
	h.events = append(h.events, e)
}
