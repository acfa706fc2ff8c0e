package game

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func toOracle(t *testing.T, hand []poker.Card) *[5]ph.Card {
	t.Helper()
	var out [5]ph.Card
	for i, c := range hand {
		var s ph.Suit
		switch c.Suit {
		case poker.Clubs:
			s = ph.Club
		case poker.Diamonds:
			s = ph.Diamond
		case poker.Hearts:
			s = ph.Heart
		case poker.Spades:
			s = ph.Spade
		}
		r := ph.Rank(c.Rank)
		if c.Rank == poker.Ace {
			r = ph.Rank(1)
		}
		card, err := ph.MakeCard(s, r)
		require.NoError(t, err)
		out[i] = card
	}
	return &out
}

// isWheel reports A-2-3-4-5, which is a straight elsewhere but high card here.
func isWheel(hand []poker.Card) bool {
	seen := map[poker.Rank]bool{}
	for _, c := range hand {
		seen[c.Rank] = true
	}
	return len(seen) == 5 && seen[poker.Ace] && seen[poker.Two] && seen[poker.Three] && seen[poker.Four] && seen[poker.Five]
}

func TestResolveWinnersAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	rng := randutil.New(20240518)
	checked := 0
	for checked < 3000 {
		deck := poker.NewDeck(rng)
		a, err := deck.Deal(poker.HandSize)
		require.NoError(t, err)
		b, err := deck.Deal(poker.HandSize)
		require.NoError(t, err)
		if isWheel(a) || isWheel(b) {
			continue
		}
		checked++

		evalA, err := poker.Evaluate(a)
		require.NoError(t, err)
		evalB, err := poker.Evaluate(b)
		require.NoError(t, err)
		pa, pb := NewPlayer(1, "a", 0), NewPlayer(2, "b", 0)

		outcome, err := ResolveWinners([]Contender{{Player: pa, Hand: evalA}, {Player: pb, Hand: evalB}})
		require.NoError(t, err)

		scoreA := ph.Eval5(toOracle(t, a))
		scoreB := ph.Eval5(toOracle(t, b))
		switch {
		case scoreA > scoreB:
			require.Equal(t, pa, outcome.Winner(), "%s vs %s", poker.Hand(a), poker.Hand(b))
		case scoreB > scoreA:
			require.Equal(t, pb, outcome.Winner(), "%s vs %s", poker.Hand(a), poker.Hand(b))
		default:
			require.True(t, outcome.Draw(), "%s vs %s", poker.Hand(a), poker.Hand(b))
		}
	}
}
