package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

func result(t *testing.T, hands ...string) game.RoundResult {
	t.Helper()
	contenders := make([]game.Contender, len(hands))
	r := game.RoundResult{Hands: map[string]poker.Evaluation{}}
	for i, h := range hands {
		c, err := game.NewTestContender(h, h)
		require.NoError(t, err)
		contenders[i] = c
		r.Hands[h] = c.Hand
	}
	outcome, err := game.ResolveWinners(contenders)
	require.NoError(t, err)
	r.Outcome = outcome
	return r
}

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	s := New()
	assert.Zero(t, s.MeanDrawn())
	assert.Zero(t, s.VarianceDrawn())
	assert.Zero(t, s.StdDevDrawn())
	assert.Zero(t, s.DrawRate())
	assert.Zero(t, s.Frequency(poker.Pair))
	assert.NoError(t, s.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	t.Parallel()

	s := New()
	s.Add(result(t, "♣3♥9♠10♠A♥A", "♥4♣7♥8♠Q♥Q"), map[string]int{"♣3♥9♠10♠A♥A": 3, "♥4♣7♥8♠Q♥Q": 1})
	s.Add(result(t, "♥9♥10♥J♥Q♥K", "♠9♠10♠J♠Q♠K"), nil)

	assert.Equal(t, 2, s.Rounds)
	assert.Equal(t, 1, s.Draws)
	assert.Equal(t, 0.5, s.DrawRate())
	assert.Equal(t, 2, s.Hands[poker.Pair])
	assert.Equal(t, 2, s.Hands[poker.StraightFlush])
	assert.Equal(t, 1, s.Winning[poker.Pair])
	assert.Equal(t, 1, s.Winning[poker.StraightFlush])
	assert.Equal(t, map[string]int{"♣3♥9♠10♠A♥A": 1}, s.Wins)
	assert.Equal(t, 0.5, s.Frequency(poker.Pair))

	assert.Equal(t, 4, s.Drawn)
	assert.InDelta(t, 1.0, s.MeanDrawn(), 1e-9)
	// samples 3, 1, 0, 0
	assert.InDelta(t, 2.0, s.VarianceDrawn(), 1e-9)
	assert.NoError(t, s.Validate())
}

func TestStatisticsMerge(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.Add(result(t, "♣3♥9♠10♠A♥A", "♥4♣7♥8♠Q♥Q"), nil)
	b.Add(result(t, "♣10♥10♦A♠A♥A", "♥J♣J♦K♣K♠K"), nil)
	b.Add(result(t, "♣3♥9♠10♠A♥A", "♥4♣7♥8♠Q♥Q"), nil)

	a.Merge(b)
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 6, a.HandCount())
	assert.Equal(t, 2, a.Wins["♣3♥9♠10♠A♥A"])
	assert.Equal(t, []string{"♣3♥9♠10♠A♥A", "♣10♥10♦A♠A♥A"}, a.Players())
	assert.NoError(t, a.Validate())
}

func TestStatisticsValidateDetectsMismatch(t *testing.T) {
	t.Parallel()

	s := New()
	s.Rounds = 1
	assert.Error(t, s.Validate())
}

func TestCollectorFollowsEngine(t *testing.T) {
	t.Parallel()

	_, engine := game.NewTestEngine(game.WithPlayers("Alice", "Bob", "Carol"))
	collector := NewCollector()
	engine.EventBus().Subscribe(game.SubscriberFunc(func(ev game.GameEvent) {
		if sel, ok := ev.(game.SelectDiscardsEvent); ok && sel.Player.Name == "Bob" {
			require.NoError(t, sel.Player.MarkDiscard(0))
			require.NoError(t, sel.Player.MarkDiscard(1))
		}
	}))
	engine.EventBus().Subscribe(collector)

	for range 25 {
		_, err := engine.PlayRound(context.Background())
		require.NoError(t, err)
	}

	s := collector.Statistics()
	assert.Equal(t, 25, s.Rounds)
	assert.Equal(t, 75, s.HandCount())
	assert.InDelta(t, 2.0/3.0, s.MeanDrawn(), 1e-9)
	require.NoError(t, s.Validate())

	wins := 0
	for _, st := range engine.Standings() {
		wins += st.Wins
		assert.Equal(t, st.Wins, s.Wins[st.Name])
	}
	assert.Equal(t, s.Rounds-s.Draws, wins)
}
