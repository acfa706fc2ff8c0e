package game

import (
	"errors"
	"fmt"

	"github.com/lox/drawpoker/poker"
)

// ErrEmptyPlayerSet is returned when a round or showdown has no players.
var ErrEmptyPlayerSet = errors.New("no players")

// Contender is a player paired with the evaluation of their hand
type Contender struct {
	Player *Player
	Hand   poker.Evaluation
}

// NewContender evaluates cards for a player who is not seated at a table.
func NewContender(name string, cards []poker.Card) (Contender, error) {
	eval, err := poker.Evaluate(cards)
	if err != nil {
		return Contender{}, fmt.Errorf("%s: %w", name, err)
	}
	p := NewPlayer(0, name, 0)
	p.receive(cards...)
	p.evaluation = &eval
	return Contender{Player: p, Hand: eval}, nil
}

// Outcome is the result of a showdown. A single winner takes the round; two
// or more remaining contenders are a draw.
type Outcome struct {
	Category poker.Category
	Winners  []*Player
}

// Draw reports whether the round ended without an outright winner
func (o Outcome) Draw() bool {
	return len(o.Winners) > 1
}

// Winner returns the outright winner, or nil on a draw
func (o Outcome) Winner() *Player {
	if len(o.Winners) != 1 {
		return nil
	}
	return o.Winners[0]
}

// apply credits the outright winner with one win. Draws credit nobody.
func (o Outcome) apply() {
	if w := o.Winner(); w != nil {
		w.win()
	}
}

// narrowFunc reduces a tied set of contenders to those still tied.
type narrowFunc func([]Contender) []Contender

// narrowers holds the tie-break cascade for each category.
var narrowers = map[poker.Category]narrowFunc{
	poker.HighCard:           narrowByRanks,
	poker.Pair:               narrowPair,
	poker.TwoPairs:           narrowTwoPairs,
	poker.ThreeOfAKind:       narrowTrips,
	poker.Straight:           narrowByRanks,
	poker.Flush:              narrowByRanks,
	poker.FullHouse:          narrowTrips,
	poker.FourOfAKind:        narrowQuads,
	poker.StraightFlush:      narrowByRanks,
	poker.RoyalStraightFlush: func(cs []Contender) []Contender { return cs },
}

// ResolveWinners finds the best category among the contenders and narrows the
// players holding it to the winner, or to the set that cannot be separated.
func ResolveWinners(contenders []Contender) (Outcome, error) {
	if len(contenders) == 0 {
		return Outcome{}, ErrEmptyPlayerSet
	}

	best := contenders[0].Hand.Category
	for _, c := range contenders[1:] {
		if c.Hand.Category > best {
			best = c.Hand.Category
		}
	}

	var tied []Contender
	for _, c := range contenders {
		if c.Hand.Category == best {
			tied = append(tied, c)
		}
	}

	if len(tied) > 1 {
		tied = narrowers[best](tied)
	}

	outcome := Outcome{Category: best, Winners: make([]*Player, len(tied))}
	for i, c := range tied {
		outcome.Winners[i] = c.Player
	}
	return outcome, nil
}

func narrowPair(cs []Contender) []Contender {
	cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Pairs[0] })
	return narrowByRanks(cs)
}

func narrowTwoPairs(cs []Contender) []Contender {
	cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Pairs[0] })
	cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Pairs[1] })
	return narrowByRanks(cs)
}

// narrowTrips serves both three of a kind and full house. Only a full house
// carries a pair to compare after the trips.
func narrowTrips(cs []Contender) []Contender {
	cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Trips[0] })
	if len(cs) > 1 && cs[0].Hand.Category == poker.FullHouse {
		cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Pairs[0] })
	}
	return narrowByRanks(cs)
}

// narrowQuads compares the quad rank only; the kicker is never consulted.
func narrowQuads(cs []Contender) []Contender {
	return narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Quads[0] })
}

// narrowByRanks compares all five ranks position by position.
func narrowByRanks(cs []Contender) []Contender {
	for i := 0; i < poker.HandSize && len(cs) > 1; i++ {
		cs = narrowBy(cs, func(e poker.Evaluation) poker.Rank { return e.Ranks[i] })
	}
	return cs
}

// narrowBy keeps the contenders holding the highest key. A single contender
// is returned untouched.
func narrowBy(cs []Contender, key func(poker.Evaluation) poker.Rank) []Contender {
	if len(cs) <= 1 {
		return cs
	}
	best := key(cs[0].Hand)
	for _, c := range cs[1:] {
		if k := key(c.Hand); k > best {
			best = k
		}
	}
	kept := make([]Contender, 0, len(cs))
	for _, c := range cs {
		if key(c.Hand) == best {
			kept = append(kept, c)
		}
	}
	return kept
}
