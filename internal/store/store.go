// Package store persists player standings between sessions.
//
// The file is plain text with one player per line, the name and win count
// separated by a tab. Blank lines and lines starting with '#' are ignored.
//
//	# drawpoker standings
//	Alice	12
//	Bob	7
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/lox/drawpoker/internal/fileutil"
	"github.com/lox/drawpoker/internal/game"
)

// ErrMalformed is returned for a standings file that cannot be parsed.
var ErrMalformed = errors.New("malformed standings file")

const header = "# drawpoker standings"

// Load reads standings from path. A missing file yields no standings.
func Load(path string) ([]game.Standing, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening standings: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses standings from r
func Read(r io.Reader) ([]game.Standing, error) {
	var standings []game.Standing
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}

		name, wins, ok := strings.Cut(text, "\t")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: line %d: want name<TAB>wins", ErrMalformed, line)
		}
		n, err := strconv.Atoi(strings.TrimSpace(wins))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: line %d: invalid win count %q", ErrMalformed, line, wins)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: line %d: duplicate player %q", ErrMalformed, line, name)
		}
		seen[name] = true
		standings = append(standings, game.Standing{Name: name, Wins: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading standings: %w", err)
	}
	return standings, nil
}

// Save atomically replaces the file at path with standings
func Save(path string, standings []game.Standing) error {
	for _, s := range standings {
		if strings.ContainsAny(s.Name, "\t\r\n") || s.Name == "" || strings.HasPrefix(s.Name, "#") {
			return fmt.Errorf("cannot save player name %q", s.Name)
		}
	}
	return fileutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, standings)
	})
}

// Write renders standings in the file format
func Write(w io.Writer, standings []game.Standing) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, s := range standings {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Wins); err != nil {
			return err
		}
	}
	return nil
}

// Restore returns seats with win counts carried over from saved standings of
// the same name. Saved players without a seat are dropped.
func Restore(seats, saved []game.Standing) []game.Standing {
	wins := make(map[string]int, len(saved))
	for _, s := range saved {
		wins[s.Name] = s.Wins
	}
	out := make([]game.Standing, len(seats))
	for i, s := range seats {
		out[i] = game.Standing{Name: s.Name, Wins: s.Wins + wins[s.Name]}
	}
	return out
}
