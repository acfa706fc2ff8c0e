package bot

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func hand(t *testing.T, s string) poker.Hand {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	h := poker.Hand(cards)
	h.Sort()
	return h
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, name := range []string{Stand, Draw, Random} {
		s, err := New(name, randutil.New(1))
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name())
	}

	_, err := New(Human, randutil.New(1))
	assert.ErrorIs(t, err, ErrInteractive)

	_, err = New("bluff", randutil.New(1))
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	assert.True(t, Known(Human))
	assert.False(t, Known("bluff"))
}

func TestDrawBotDiscards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hand string
		want string // cards thrown away
	}{
		{"stands on a straight", "♣9♥10♦J♠Q♥K", ""},
		{"stands on a flush", "♥4♥10♥J♥Q♥K", ""},
		{"stands on a full house", "♣10♥10♦A♠A♥A", ""},
		{"stands on quads", "♣2♣A♦A♠A♥A", ""},
		{"draws to trips", "♣7♥9♣A♠A♥A", "♣7 ♥9"},
		{"draws to two pairs", "♣3♥9♠9♠A♥A", "♣3"},
		{"draws to a pair", "♣3♥9♠10♠A♥A", "♣3 ♥9 ♠10"},
		{"chases a flush", "♥4♥10♥J♥Q♠K", "♠K"},
		{"chases an open straight", "♣2♥7♦8♠9♥10", "♣2"},
		{"ignores a closed straight", "♣4♥J♦Q♠K♥A", "♣4 ♥J ♦Q"},
		{"keeps the top two", "♣3♥5♦9♠J♥K", "♣3 ♥5 ♦9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := hand(t, tt.hand)
			var got []poker.Card
			for _, idx := range (DrawBot{}).Discards(h) {
				got = append(got, h[idx])
			}
			assert.Equal(t, tt.want, poker.FormatCards(got))
		})
	}
}

func TestStandBotNeverDraws(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StandBot{}.Discards(hand(t, "♣3♥5♦9♠J♥K")))
}

func TestRandBotIsDeterministic(t *testing.T) {
	t.Parallel()

	h := hand(t, "♣3♥5♦9♠J♥K")
	a, b := NewRandBot(randutil.New(5)), NewRandBot(randutil.New(5))
	for range 20 {
		got := a.Discards(h)
		assert.Equal(t, got, b.Discards(h))
		for _, idx := range got {
			assert.True(t, idx >= 0 && idx < len(h))
		}
	}
}

func TestSeatMarksOnlyItsOwnPlayer(t *testing.T) {
	t.Parallel()

	_, engine := game.NewTestEngine(game.WithPlayers("Alice", "Bob"))
	engine.EventBus().Subscribe(NewSeat("Alice", allBot{}, log.New(io.Discard)))

	discarded := map[string]int{}
	engine.EventBus().Subscribe(game.SubscriberFunc(func(ev game.GameEvent) {
		if r, ok := ev.(game.ReplacementReceivedEvent); ok {
			discarded[r.Player.Name] = len(r.Discarded)
		}
	}))

	_, err := engine.PlayRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Alice": poker.HandSize, "Bob": 0}, discarded)
}

func TestSeatIgnoresInvalidIndexes(t *testing.T) {
	t.Parallel()

	_, engine := game.NewTestEngine()
	engine.EventBus().Subscribe(NewSeat("Alice", badBot{}, log.New(io.Discard)))

	result, err := engine.PlayRound(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Hands, 2)
}

type allBot struct{}

func (allBot) Name() string { return "all" }

func (allBot) Discards(h poker.Hand) []int { return []int{0, 1, 2, 3, 4} }

type badBot struct{}

func (badBot) Name() string { return "bad" }

func (badBot) Discards(poker.Hand) []int { return []int{7, -1} }
