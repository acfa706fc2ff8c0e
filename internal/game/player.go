package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lox/drawpoker/poker"
)

// ErrDiscardIndex is returned when a discard mark does not point at a held card.
var ErrDiscardIndex = errors.New("discard index out of range")

// Standing is the persisted record of a player: a name and a win count.
type Standing struct {
	Name string
	Wins int
}

// Player represents a seated player. The win counter only changes when a
// round outcome is applied.
type Player struct {
	Seat int
	Name string

	wins       int
	hand       poker.Hand
	discards   map[int]bool
	evaluation *poker.Evaluation
}

// NewPlayer creates a player with an empty hand
func NewPlayer(seat int, name string, wins int) *Player {
	return &Player{
		Seat:     seat,
		Name:     name,
		wins:     wins,
		discards: make(map[int]bool),
	}
}

// NewPlayers seats one player per standing, in order.
func NewPlayers(standings []Standing) []*Player {
	players := make([]*Player, len(standings))
	for i, s := range standings {
		players[i] = NewPlayer(i+1, s.Name, s.Wins)
	}
	return players
}

// Wins returns the number of rounds this player has won outright
func (p *Player) Wins() int {
	return p.wins
}

// Standing returns the persistable record for this player
func (p *Player) Standing() Standing {
	return Standing{Name: p.Name, Wins: p.wins}
}

// Hand returns a copy of the cards currently held
func (p *Player) Hand() poker.Hand {
	return p.hand.Clone()
}

// Evaluation returns the evaluation from the latest round, if any.
func (p *Player) Evaluation() (poker.Evaluation, bool) {
	if p.evaluation == nil {
		return poker.Evaluation{}, false
	}
	return *p.evaluation, true
}

// MarkDiscard marks the card at index for discarding. Marking the same card
// twice has no further effect.
func (p *Player) MarkDiscard(index int) error {
	if index < 0 || index >= len(p.hand) {
		return fmt.Errorf("%w: %d (hand has %d cards)", ErrDiscardIndex, index, len(p.hand))
	}
	p.discards[index] = true
	return nil
}

// MarkDiscardCard marks a held card for discarding.
func (p *Player) MarkDiscardCard(card poker.Card) error {
	idx := p.hand.IndexOf(card)
	if idx < 0 {
		return fmt.Errorf("%w: %s is not in hand %s", ErrDiscardIndex, card, p.hand)
	}
	return p.MarkDiscard(idx)
}

// UnmarkDiscard keeps a previously marked card.
func (p *Player) UnmarkDiscard(index int) {
	delete(p.discards, index)
}

// Discards returns the cards currently marked for discarding, in hand order.
func (p *Player) Discards() []poker.Card {
	var out []poker.Card
	for _, idx := range p.discardIndexes() {
		out = append(out, p.hand[idx])
	}
	return out
}

func (p *Player) discardIndexes() []int {
	idx := make([]int, 0, len(p.discards))
	for i := range p.discards {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (p *Player) clearDiscards() {
	clear(p.discards)
}

// removeDiscards takes the marked cards out of the hand and returns them.
func (p *Player) removeDiscards() []poker.Card {
	if len(p.discards) == 0 {
		return nil
	}
	removed := make([]poker.Card, 0, len(p.discards))
	kept := make(poker.Hand, 0, len(p.hand))
	for i, c := range p.hand {
		if p.discards[i] {
			removed = append(removed, c)
			continue
		}
		kept = append(kept, c)
	}
	p.hand = kept
	p.clearDiscards()
	return removed
}

func (p *Player) receive(cards ...poker.Card) {
	p.hand = append(p.hand, cards...)
}

// surrender empties the hand and returns what was held.
func (p *Player) surrender() []poker.Card {
	cards := p.hand
	p.hand = nil
	p.clearDiscards()
	return cards
}

func (p *Player) sortHand() {
	p.hand.Sort()
}

func (p *Player) win() {
	p.wins++
}
