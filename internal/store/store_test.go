package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/internal/game"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	standings, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, standings)
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "standings.txt")
	want := []game.Standing{{Name: "Test1", Wins: 7}, {Name: "Mary Ann", Wins: 3}, {Name: "Bob", Wins: 0}}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# drawpoker standings\nTest1\t7\nMary Ann\t3\nBob\t0\n", string(data))
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	t.Parallel()

	got, err := Read(strings.NewReader("# saved\n\nAlice\t2\r\n  \nBob\t 5\n"))
	require.NoError(t, err)
	assert.Equal(t, []game.Standing{{Name: "Alice", Wins: 2}, {Name: "Bob", Wins: 5}}, got)
}

func TestReadRejectsMalformedFiles(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"Alice 2\n",
		"\t2\n",
		"Alice\tmany\n",
		"Alice\t-1\n",
		"Alice\t1\nAlice\t2\n",
	} {
		_, err := Read(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", input)
	}
}

func TestSaveRejectsUnwritableNames(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "standings.txt")
	for _, name := range []string{"", "a\tb", "a\nb", "#admin"} {
		assert.Error(t, Save(path, []game.Standing{{Name: name}}), "name %q", name)
	}
	assert.NoFileExists(t, path)
}

func TestRestore(t *testing.T) {
	t.Parallel()

	seats := []game.Standing{{Name: "Alice"}, {Name: "Carol"}}
	saved := []game.Standing{{Name: "Bob", Wins: 4}, {Name: "Alice", Wins: 9}}
	assert.Equal(t, []game.Standing{{Name: "Alice", Wins: 9}, {Name: "Carol"}}, Restore(seats, saved))
}

func TestAutosaverSavesEveryRound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "standings.txt")
	_, engine := game.NewTestEngine()
	saver := NewAutosaver(path, engine, log.New(io.Discard))

	var onDisk [][]game.Standing
	engine.EventBus().Subscribe(saver)
	engine.EventBus().Subscribe(game.SubscriberFunc(func(ev game.GameEvent) {
		if _, ok := ev.(game.RoundCompleteEvent); ok {
			got, err := Load(path)
			require.NoError(t, err)
			onDisk = append(onDisk, got)
		}
	}))

	for range 3 {
		_, err := engine.PlayRound(context.Background())
		require.NoError(t, err)
	}

	require.Len(t, onDisk, 3)
	assert.Equal(t, engine.Standings(), onDisk[2])
	assert.NoError(t, saver.Err())
}

func TestAutosaverLogsFailures(t *testing.T) {
	t.Parallel()

	// A directory cannot be replaced by the rename.
	path := t.TempDir()
	_, engine := game.NewTestEngine()
	saver := NewAutosaver(path, engine, log.New(io.Discard))
	engine.EventBus().Subscribe(saver)

	_, err := engine.PlayRound(context.Background())
	require.NoError(t, err, "save failures never stop the game")
	assert.Error(t, saver.Err())
}
