package poker

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrDeckExhausted is returned when a deal asks for more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck. Cards are dealt from the top and
// returned to the bottom.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full, shuffled deck using the supplied RNG
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck. It deals nothing when fewer
// than n cards remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}
	if n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d remaining", ErrDeckExhausted, n, len(d.cards))
	}
	dealt := make([]Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// Return puts cards back at the bottom of the deck.
func (d *Deck) Return(cards ...Card) error {
	if len(d.cards)+len(cards) > DeckSize {
		return fmt.Errorf("deck is full: %d cards cannot take %d more", len(d.cards), len(cards))
	}
	d.cards = append(d.cards, cards...)
	return nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
