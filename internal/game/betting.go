package game

// Street represents the phase of a hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	HandComplete
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case HandComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	default:
		return "unknown"
	}
}

// ValidAction describes a legal action with its amount bounds. For Raise the
// bounds are raise-to totals for the street (Min is the smallest legal
// raise-to, Max is the all-in total). For Call they are the additional chips
// needed to match. Fold and Check carry no amounts.
type ValidAction struct {
	Action Action
	Min    int
	Max    int
}

// BettingRound holds the state of one street's betting. Blinds count toward
// CurrentBet but do not mark their posters as having acted, which is what
// gives the big blind its preflop option.
type BettingRound struct {
	CurrentBet int // bet-to-match: highest street contribution so far
	MinRaise   int // minimum raise increment over CurrentBet
	LastRaiser int // hand seat of the last raiser, -1 if none
	BigBlind   int // kept to reset MinRaise at each new street
	Acted      []bool
}

// NewBettingRound creates the betting state for a hand with n seats
func NewBettingRound(n, bigBlind int) *BettingRound {
	return &BettingRound{
		CurrentBet: 0,
		MinRaise:   bigBlind,
		LastRaiser: -1,
		BigBlind:   bigBlind,
		Acted:      make([]bool, n),
	}
}

// ResetForStreet clears per-street state when a new street begins
func (br *BettingRound) ResetForStreet() {
	br.CurrentBet = 0
	br.MinRaise = br.BigBlind
	br.LastRaiser = -1
	for i := range br.Acted {
		br.Acted[i] = false
	}
}

// reopen marks a raise: everyone but the raiser must act again
func (br *BettingRound) reopen(raiser int) {
	for i := range br.Acted {
		br.Acted[i] = false
	}
	br.Acted[raiser] = true
	br.LastRaiser = raiser
}

// ValidActions returns the legal actions and bounds for a player
func (br *BettingRound) ValidActions(p *Player) []ValidAction {
	if !p.Active() || p.Chips == 0 {
		return nil
	}

	actions := []ValidAction{{Action: Fold}}

	toCall := br.CurrentBet - p.Bet
	minRaiseTo := br.CurrentBet + br.MinRaise
	maxRaiseTo := p.Bet + p.Chips

	if toCall <= 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else if toCall <= p.Chips {
		actions = append(actions, ValidAction{Action: Call, Min: toCall, Max: toCall})
	}

	if maxRaiseTo >= minRaiseTo {
		actions = append(actions, ValidAction{Action: Raise, Min: minRaiseTo, Max: maxRaiseTo})
	}

	actions = append(actions, ValidAction{Action: AllIn, Min: p.Chips, Max: p.Chips})

	return actions
}

// Complete reports whether the street's betting is finished: every player
// still able to act has matched the bet-to-match and has acted at least once
// since it was last raised. A lone remaining actor only needs to match.
func (br *BettingRound) Complete(players []*Player) bool {
	active := 0
	for _, p := range players {
		if p.Active() {
			active++
		}
	}

	if active == 0 {
		return true
	}

	if active == 1 {
		for _, p := range players {
			if p.Active() {
				return p.Bet >= br.CurrentBet
			}
		}
	}

	for i, p := range players {
		if !p.Active() {
			continue
		}
		if p.Bet < br.CurrentBet {
			return false
		}
		if !br.Acted[i] {
			return false
		}
	}
	return true
}
