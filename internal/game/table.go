package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/poker"
)

// Dealer is the deck collaborator driven by the Engine. Any failure to supply
// cards is reported as poker.ErrDeckExhausted.
type Dealer interface {
	// DealHand returns the player's previous cards and deals a fresh hand.
	DealHand(p *Player) error
	// Discard accepts cards removed from a hand during the draw.
	Discard(cards []poker.Card)
	// Replace deals count replacement cards to the player.
	Replace(p *Player, count int) error
	// CollectDiscards returns the discard pile to the deck.
	CollectDiscards()
	// Rebuild reshuffles the deck for the next deal.
	Rebuild()
}

// Table owns the deck and the discard pile for one game. Every one of the 52
// cards is always either in the deck, in a hand or in the discard pile.
type Table struct {
	deck    *poker.Deck
	discard []poker.Card
	players []*Player
	logger  *log.Logger
}

// NewTable creates a table with a freshly shuffled deck
func NewTable(rng *rand.Rand, logger *log.Logger) *Table {
	if logger == nil {
		panic("logger is required for table creation")
	}
	return &Table{
		deck:   poker.NewDeck(rng),
		logger: logger.WithPrefix("table"),
	}
}

// Seat registers players so that their hands are included in card accounting.
func (t *Table) Seat(players ...*Player) {
	t.players = append(t.players, players...)
}

// DealHand returns whatever the player still holds to the deck and deals a
// fresh hand of five.
func (t *Table) DealHand(p *Player) error {
	if held := p.surrender(); len(held) > 0 {
		if err := t.deck.Return(held...); err != nil {
			return fmt.Errorf("returning %s's cards: %w", p.Name, err)
		}
	}
	cards, err := t.deck.Deal(poker.HandSize)
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	p.receive(cards...)
	t.logger.Debug("Dealt hand", "player", p.Name, "remaining", t.deck.CardsRemaining())
	return nil
}

// Discard moves cards onto the discard pile
func (t *Table) Discard(cards []poker.Card) {
	t.discard = append(t.discard, cards...)
}

// Replace deals count cards to the player
func (t *Table) Replace(p *Player, count int) error {
	if count == 0 {
		return nil
	}
	cards, err := t.deck.Deal(count)
	if err != nil {
		return fmt.Errorf("replacing %d cards for %s: %w", count, p.Name, err)
	}
	p.receive(cards...)
	t.logger.Debug("Replaced cards", "player", p.Name, "count", count, "remaining", t.deck.CardsRemaining())
	return nil
}

// CollectDiscards returns the discard pile to the bottom of the deck
func (t *Table) CollectDiscards() {
	if len(t.discard) == 0 {
		return
	}
	// The pile only ever holds cards dealt from this deck, so it always fits.
	if err := t.deck.Return(t.discard...); err != nil {
		t.logger.Error("Failed to collect discards", "error", err)
		return
	}
	t.logger.Debug("Collected discards", "count", len(t.discard))
	t.discard = t.discard[:0]
}

// Rebuild shuffles the cards remaining in the deck
func (t *Table) Rebuild() {
	t.deck.Shuffle()
}

// CardCount returns the cards in the deck, in seated hands and on the discard
// pile. It is always poker.DeckSize.
func (t *Table) CardCount() int {
	total := t.deck.CardsRemaining() + len(t.discard)
	for _, p := range t.players {
		total += len(p.hand)
	}
	return total
}

// DeckRemaining returns the number of undealt cards
func (t *Table) DeckRemaining() int {
	return t.deck.CardsRemaining()
}

// DiscardPile returns the number of cards awaiting collection
func (t *Table) DiscardPile() int {
	return len(t.discard)
}
