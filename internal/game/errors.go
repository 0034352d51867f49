package game

import "errors"

// Validation errors returned by SubmitAction and StartHand. These are
// caller errors: the engine state is unchanged and the caller should
// re-prompt. None of them are fatal to the table.
var (
	ErrNotPlayersTurn   = errors.New("not player's turn to act")
	ErrIllegalCheck     = errors.New("cannot check facing a bet")
	ErrRaiseTooSmall    = errors.New("raise below minimum")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrNotEnoughPlayers = errors.New("not enough players with chips")
	ErrHandInProgress   = errors.New("hand already in progress")
	ErrNoHand           = errors.New("no hand started")
	ErrHandComplete     = errors.New("hand is complete")
	ErrHandNotComplete  = errors.New("hand is not complete")
	ErrUnknownPlayer    = errors.New("unknown player")
)
