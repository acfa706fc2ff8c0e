package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/store"
)

func TestEvalCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &EvalCmd{Hands: []string{"♣3♥9♠10♠A♥A", "4h 7c 8h Qs Qh"}, NoColor: true, out: &out}
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "hand 1 wins with Pair")
}

func TestEvalCmdRejectsSharedCards(t *testing.T) {
	t.Parallel()

	cmd := &EvalCmd{Hands: []string{"♣3♥9♠10♠A♥A", "♥4♣7♥8♠Q♥A"}, out: &bytes.Buffer{}}
	err := cmd.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used in hand 1")
}

func TestEvalCmdRejectsShortHands(t *testing.T) {
	t.Parallel()

	cmd := &EvalCmd{Hands: []string{"♣3♥9♠10♠A"}, out: &bytes.Buffer{}}
	assert.Error(t, cmd.Run())
}

func TestStandingsCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "standings.txt")
	require.NoError(t, store.Save(path, []game.Standing{{Name: "Bob", Wins: 2}, {Name: "Alice", Wins: 9}}))

	var out bytes.Buffer
	cmd := &StandingsCmd{SaveFile: path, NoColor: true, out: &out}
	require.NoError(t, cmd.Run())
	assert.Less(t, strings.Index(out.String(), "Alice"), strings.Index(out.String(), "Bob"))
}

func TestStandingsCmdEmpty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &StandingsCmd{SaveFile: filepath.Join(t.TempDir(), "none.txt"), out: &out}
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "No standings saved")
}

func TestSimulateCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := &SimulateCmd{
		Tables:     3,
		Rounds:     50,
		Strategies: []string{"draw", "stand", "random"},
		Seed:       11,
		Workers:    2,
		NoColor:    true,
		out:        &out,
	}
	require.NoError(t, cmd.Run())
	assert.Contains(t, out.String(), "150 rounds, 450 hands")
	assert.Contains(t, out.String(), "(draws)")
}

func TestSimulateCmdIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func(workers int) string {
		var out bytes.Buffer
		cmd := &SimulateCmd{Tables: 4, Rounds: 30, Strategies: []string{"draw", "random"}, Seed: 5, Workers: workers, NoColor: true, out: &out}
		require.NoError(t, cmd.Run())
		return out.String()
	}
	assert.Equal(t, run(1), run(4))
}

func TestSimulateCmdValidation(t *testing.T) {
	t.Parallel()

	for _, cmd := range []*SimulateCmd{
		{Tables: 0, Rounds: 1, Strategies: []string{"draw", "draw"}},
		{Tables: 1, Rounds: 0, Strategies: []string{"draw", "draw"}},
		{Tables: 1, Rounds: 1, Strategies: []string{"draw"}},
		{Tables: 1, Rounds: 1, Strategies: []string{"draw", "human"}},
		{Tables: 1, Rounds: 1, Strategies: []string{"draw", "bluff"}},
	} {
		assert.Error(t, cmd.validate())
	}
}

func TestPlayCmdWithBots(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	save := filepath.Join(dir, "standings.txt")
	require.NoError(t, store.Save(save, []game.Standing{{Name: "Alice", Wins: 4}}))

	var out bytes.Buffer
	cmd := &PlayCmd{
		Config:    filepath.Join(dir, "missing.hcl"),
		Seat:      []string{"Alice:draw", "Bob:stand"},
		SaveFile:  save,
		Seed:      3,
		MaxRounds: 5,
		LogLevel:  "error",
		NoColor:   true,
		out:       &out,
	}
	require.NoError(t, cmd.Run())

	assert.Contains(t, out.String(), "Round 5")
	assert.NotContains(t, out.String(), "Round 6")

	standings, err := store.Load(save)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	total := standings[0].Wins + standings[1].Wins
	assert.GreaterOrEqual(t, standings[0].Wins, 4, "saved wins are carried over")
	assert.LessOrEqual(t, total, 4+5)
}

func TestPlayCmdRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "drawpoker.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`player "A" { strategy = "bluff" }`), 0o644))

	cmd := &PlayCmd{Config: path, MaxRounds: -1, out: &bytes.Buffer{}}
	assert.Error(t, cmd.Run())
}
