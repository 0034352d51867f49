package game

// DecisionMaker chooses an action for the player whose turn it is. The
// state is a snapshot from that player's perspective, and valid lists the
// actions currently legal for them with their chip bounds. Implementations
// return one of the listed actions; for Raise the amount is the new street
// total being raised to, and for other actions it is ignored.
type DecisionMaker interface {
	Decide(state TableState, valid []ValidAction) (Action, int)
}

// DecisionFunc adapts a function to the DecisionMaker interface
type DecisionFunc func(state TableState, valid []ValidAction) (Action, int)

func (f DecisionFunc) Decide(state TableState, valid []ValidAction) (Action, int) {
	return f(state, valid)
}
