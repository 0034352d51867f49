package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
)

func cards(t *testing.T, strs ...string) []deck.Card {
	t.Helper()
	cs, err := deck.ParseCards(strs...)
	require.NoError(t, err)
	return cs
}

func TestPreflopStrengthOrdering(t *testing.T) {
	aces := handStrength(cards(t, "As", "Ad"), nil)
	kings := handStrength(cards(t, "Ks", "Kd"), nil)
	suitedConnector := handStrength(cards(t, "9h", "8h"), nil)
	trash := handStrength(cards(t, "7s", "2d"), nil)

	assert.Greater(t, aces, kings)
	assert.Greater(t, kings, suitedConnector)
	assert.Greater(t, suitedConnector, trash)
	assert.Greater(t, aces, 0.8)
	assert.Less(t, trash, 0.3)
}

func TestPreflopSuitedBeatsOffsuit(t *testing.T) {
	suited := handStrength(cards(t, "Ah", "Kh"), nil)
	offsuit := handStrength(cards(t, "Ah", "Kd"), nil)
	assert.Greater(t, suited, offsuit)
}

func TestPostflopStrengthScalesWithCategory(t *testing.T) {
	board := cards(t, "Kh", "7c", "2d")

	set := handStrength(cards(t, "Ks", "Kd"), board)
	pair := handStrength(cards(t, "Kc", "Qd"), board)
	nothing := handStrength(cards(t, "9s", "8d"), board)

	assert.Greater(t, set, pair)
	assert.Greater(t, pair, nothing)
	assert.Less(t, nothing, 0.1)
}

func TestStrengthBoardPlaysItself(t *testing.T) {
	// Straight on the board and unconnected hole cards: the made-hand
	// category is high but the contribution discount applies.
	board := cards(t, "5h", "6c", "7d", "8s", "9h")
	onBoard := handStrength(cards(t, "2s", "3d"), board)
	better := handStrength(cards(t, "Ts", "Jd"), board)

	assert.Greater(t, better, onBoard)
}

func TestStrengthInvalidInput(t *testing.T) {
	assert.Zero(t, handStrength(nil, nil))
	assert.Zero(t, handStrength(cards(t, "As"), nil))
}
