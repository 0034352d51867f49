// Package game implements the Texas Hold'em engine: the betting state
// machine, pot accounting with side pots, and the table facade the
// presentation layer drives.
//
// A Table owns its players, deck, and per-hand state exclusively. All
// operations are synchronous and single-threaded; a Table must be driven by
// one logical thread of control at a time. Multiple tables are independent.
//
// Every action flows through SubmitAction, which validates against the
// current actor and betting state and returns a structured error on
// rejection, leaving the engine state untouched. Automated seats produce
// decisions through RequestDecision, which delegates to the seat's
// DecisionMaker without mutating anything; the caller submits the result
// back through SubmitAction like any other action.
package game
