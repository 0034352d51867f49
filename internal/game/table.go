package game

import (
	mrand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/randutil"
)

// TableSeat is a persistent seat at a table. Chips carry across hands;
// a seat with no chips sits out until it is re-funded.
type TableSeat struct {
	ID       string
	Name     string
	Chips    int
	Decision DecisionMaker
}

// Table runs hands back to back for a fixed set of seats, rotating the
// button over funded seats and keeping a history of completed hands.
// Not safe for concurrent use.
type Table struct {
	seats      []*TableSeat
	smallBlind int
	bigBlind   int
	button     int // table seat index of the current button, -1 before the first hand
	seed       int64
	handNum    int
	clock      quartz.Clock
	logger     *log.Logger
	hand       *HandState
	handSeats  []int // hand seat -> table seat index
	histories  []HandHistory
}

// TableOption configures a table
type TableOption func(*Table)

// WithTableSeed makes every hand's shuffle deterministic
func WithTableSeed(seed int64) TableOption {
	return func(t *Table) { t.seed = seed }
}

// WithTableClock supplies the clock used to stamp hand events
func WithTableClock(c quartz.Clock) TableOption {
	return func(t *Table) { t.clock = c }
}

// WithLogger supplies the table's logger
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger }
}

// NewTable creates an empty table with the given blind sizes
func NewTable(smallBlind, bigBlind int, opts ...TableOption) *Table {
	t := &Table{
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
		button:     -1,
		seed:       mrand.Int64(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.clock == nil {
		t.clock = quartz.NewReal()
	}
	if t.logger == nil {
		t.logger = log.Default()
	}
	return t
}

// AddPlayer seats a player with a starting stack and a decision maker
func (t *Table) AddPlayer(id, name string, chips int, dm DecisionMaker) error {
	for _, s := range t.seats {
		if s.ID == id {
			return ErrUnknownPlayer
		}
	}
	t.seats = append(t.seats, &TableSeat{ID: id, Name: name, Chips: chips, Decision: dm})
	return nil
}

// Seats returns the table's seats in seating order
func (t *Table) Seats() []*TableSeat { return t.seats }

// Hand returns the hand in progress, nil when none
func (t *Table) Hand() *HandState { return t.hand }

// Histories returns the records of completed hands, oldest first
func (t *Table) Histories() []HandHistory { return t.histories }

// StartHand deals a new hand among the funded seats. The button moves to
// the next funded seat each hand; busted seats are skipped but keep their
// place for when they are re-funded.
func (t *Table) StartHand() (*HandState, error) {
	if t.hand != nil && !t.hand.Complete() {
		return nil, ErrHandInProgress
	}

	funded := make([]int, 0, len(t.seats))
	for i, s := range t.seats {
		if s.Chips > 0 {
			funded = append(funded, i)
		}
	}
	if len(funded) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	t.button = t.nextFunded(t.button + 1)

	players := make([]*Player, len(funded))
	handButton := 0
	for i, seatIdx := range funded {
		s := t.seats[seatIdx]
		players[i] = &Player{ID: s.ID, Name: s.Name, Chips: s.Chips}
		if seatIdx == t.button {
			handButton = i
		}
	}

	hand, err := NewHand(players, handButton, t.smallBlind, t.bigBlind,
		WithSeed(randutil.Derive(t.seed, t.handNum)),
		WithClock(t.clock),
	)
	if err != nil {
		return nil, err
	}

	t.hand = hand
	t.handSeats = funded
	t.handNum++

	t.logger.Debug("hand started",
		"hand", hand.ID,
		"players", len(players),
		"button", handButton,
	)

	if hand.Complete() {
		t.finishHand()
	}
	return hand, nil
}

func (t *Table) nextFunded(from int) int {
	n := len(t.seats)
	for i := 0; i < n; i++ {
		idx := ((from+i)%n + n) % n
		if t.seats[idx].Chips > 0 {
			return idx
		}
	}
	return 0
}

// State returns the current hand from viewer's perspective; viewer is a
// hand seat, negative for an omniscient view.
func (t *Table) State(viewer int) (TableState, error) {
	if t.hand == nil {
		return TableState{}, ErrNoHand
	}
	return t.hand.StateFor(viewer), nil
}

// RequestDecision asks the acting seat's decision maker for its move
// without applying it. Returns the acting seat with the chosen action.
func (t *Table) RequestDecision() (int, Action, int, error) {
	if t.hand == nil {
		return 0, 0, 0, ErrNoHand
	}
	if t.hand.Complete() {
		return 0, 0, 0, ErrHandComplete
	}
	seat := t.hand.ToAct()
	if seat == -1 {
		return 0, 0, 0, ErrNotPlayersTurn
	}

	dm := t.seats[t.handSeats[seat]].Decision
	valid := t.hand.ValidActions(seat)
	action, amount := dm.Decide(t.hand.StateFor(seat), valid)
	return seat, action, amount, nil
}

// SubmitAction applies an action for a hand seat. When the action ends
// the hand, chips are synced back to the table seats and the hand is
// recorded in the history.
func (t *Table) SubmitAction(seat int, action Action, amount int) error {
	if t.hand == nil {
		return ErrNoHand
	}
	if err := t.hand.ProcessAction(seat, action, amount); err != nil {
		return err
	}
	if t.hand.Complete() {
		t.finishHand()
	}
	return nil
}

// ShowdownResult summarises how a completed hand was settled
type ShowdownResult struct {
	HandID       string
	Winners      []int
	Awards       []PotAward
	Descriptions map[int]string // seat -> hand description, showdowns only
}

// ShowdownResult returns the settlement of the current hand. It returns
// ErrHandNotComplete while the hand is still being played.
func (t *Table) ShowdownResult() (*ShowdownResult, error) {
	if t.hand == nil || !t.hand.Complete() {
		return nil, ErrHandNotComplete
	}
	res := &ShowdownResult{
		HandID:       t.hand.ID,
		Winners:      t.hand.Winners(),
		Awards:       t.hand.Awards(),
		Descriptions: make(map[int]string),
	}
	for seat, rank := range t.hand.Ranks() {
		res.Descriptions[seat] = rank.Describe()
	}
	return res, nil
}

// PlayHand runs the current hand to completion by alternating decisions
// and actions. A decision maker returning an invalid action is folded.
func (t *Table) PlayHand() (*HandHistory, error) {
	if t.hand == nil || t.hand.Complete() {
		if _, err := t.StartHand(); err != nil {
			return nil, err
		}
	}
	for !t.hand.Complete() {
		seat, action, amount, err := t.RequestDecision()
		if err != nil {
			return nil, err
		}
		if err := t.SubmitAction(seat, action, amount); err != nil {
			t.logger.Warn("invalid action, folding",
				"hand", t.hand.ID, "seat", seat, "action", action.String(), "err", err)
			if err := t.SubmitAction(seat, Fold, 0); err != nil {
				return nil, err
			}
		}
	}
	hist := t.histories[len(t.histories)-1]
	return &hist, nil
}

// finishHand copies hand stacks back to the table seats and records the
// hand in the history.
func (t *Table) finishHand() {
	for i, seatIdx := range t.handSeats {
		t.seats[seatIdx].Chips = t.hand.players[i].Chips
	}
	hist := historyFromHand(t.hand)
	t.histories = append(t.histories, hist)

	t.logger.Debug("hand complete",
		"hand", t.hand.ID,
		"pot", hist.Pot,
		"winners", hist.Winners,
	)
}
