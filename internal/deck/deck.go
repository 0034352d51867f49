package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when a deal asks for more cards than remain.
// It indicates a table-size misconfiguration and is fatal to the hand, not
// the process.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a standard 52-card deck. A deck is built full and shuffled, dealt
// from sequentially, and discarded at the end of the hand; it is never
// reused without reshuffling.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// New creates a shuffled 52-card deck using the provided random source.
// The RNG is explicit so deals are reproducible under a fixed seed.
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and resets the deal
// position. Any previously dealt cards are back in play.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns n cards from the top of the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: %d requested, %d remaining", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne removes and returns the top card
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Burn discards the top card face down
func (d *Deck) Burn() error {
	_, err := d.DealOne()
	return err
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Dealt returns a copy of the cards dealt so far, in deal order
func (d *Deck) Dealt() []Card {
	dealt := make([]Card, d.next)
	copy(dealt, d.cards[:d.next])
	return dealt
}
