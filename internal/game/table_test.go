package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

func newTestTable(t *testing.T, names ...string) (*Table, []*Player) {
	t.Helper()
	table := NewTable(randutil.New(3), log.New(io.Discard))
	standings := make([]Standing, len(names))
	for i, n := range names {
		standings[i] = Standing{Name: n}
	}
	players := NewPlayers(standings)
	table.Seat(players...)
	return table, players
}

func TestNewTableRequiresLogger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewTable(randutil.New(1), nil) })
}

func TestTableDealHand(t *testing.T) {
	t.Parallel()

	table, players := newTestTable(t, "Alice", "Bob")
	for _, p := range players {
		require.NoError(t, table.DealHand(p))
		assert.Len(t, p.Hand(), poker.HandSize)
	}
	assert.Equal(t, poker.DeckSize-2*poker.HandSize, table.DeckRemaining())
	assert.Equal(t, poker.DeckSize, table.CardCount())

	// Dealing again returns the old hand first.
	require.NoError(t, table.DealHand(players[0]))
	assert.Equal(t, poker.DeckSize-2*poker.HandSize, table.DeckRemaining())
	assert.Equal(t, poker.DeckSize, table.CardCount())
}

func TestTableDiscardAndCollect(t *testing.T) {
	t.Parallel()

	table, players := newTestTable(t, "Alice")
	alice := players[0]
	require.NoError(t, table.DealHand(alice))

	require.NoError(t, alice.MarkDiscard(1))
	require.NoError(t, alice.MarkDiscard(2))
	discarded := alice.removeDiscards()
	require.Len(t, discarded, 2)

	table.Discard(discarded)
	assert.Equal(t, 2, table.DiscardPile())
	assert.Equal(t, poker.DeckSize, table.CardCount())

	require.NoError(t, table.Replace(alice, len(discarded)))
	assert.Len(t, alice.Hand(), poker.HandSize)
	assert.Equal(t, poker.DeckSize-7, table.DeckRemaining())

	table.CollectDiscards()
	table.Rebuild()
	assert.Zero(t, table.DiscardPile())
	assert.Equal(t, poker.DeckSize-5, table.DeckRemaining())
	assert.Equal(t, poker.DeckSize, table.CardCount())
}

func TestTableReplaceNothing(t *testing.T) {
	t.Parallel()

	table, players := newTestTable(t, "Alice")
	require.NoError(t, table.DealHand(players[0]))
	require.NoError(t, table.Replace(players[0], 0))
	assert.Len(t, players[0].Hand(), poker.HandSize)
	assert.Equal(t, poker.DeckSize-5, table.DeckRemaining())
}

func TestTableReplaceExhausted(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	table, players := newTestTable(t, names...)
	for _, p := range players {
		require.NoError(t, table.DealHand(p))
	}
	require.Equal(t, 2, table.DeckRemaining())

	err := table.Replace(players[0], 3)
	require.ErrorIs(t, err, poker.ErrDeckExhausted)
	assert.Equal(t, 2, table.DeckRemaining(), "a failed replacement takes nothing")
}
