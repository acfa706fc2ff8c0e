// Package statistics accumulates round outcomes: category frequencies, wins,
// draws and how many cards players draw.
package statistics

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// Statistics tracks outcomes over many rounds
type Statistics struct {
	Rounds int
	Draws  int

	Hands   [len(poker.Categories)]int // every final hand, by category
	Winning [len(poker.Categories)]int // the deciding category of each round
	Wins    map[string]int

	// Cards drawn per hand
	Drawn     int
	SumDrawn  float64
	SumDrawn2 float64
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{Wins: make(map[string]int)}
}

// Add incorporates one round. drawn maps each player to the number of cards
// they replaced that round.
func (s *Statistics) Add(result game.RoundResult, drawn map[string]int) {
	if s.Wins == nil {
		s.Wins = make(map[string]int)
	}
	s.Rounds++
	s.Winning[result.Outcome.Category]++
	if w := result.Outcome.Winner(); w != nil {
		s.Wins[w.Name]++
	} else {
		s.Draws++
	}

	for name, eval := range result.Hands {
		s.Hands[eval.Category]++
		n := float64(drawn[name])
		s.Drawn++
		s.SumDrawn += n
		s.SumDrawn2 += n * n
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if s.Wins == nil {
		s.Wins = make(map[string]int)
	}
	s.Rounds += other.Rounds
	s.Draws += other.Draws
	for i := range s.Hands {
		s.Hands[i] += other.Hands[i]
		s.Winning[i] += other.Winning[i]
	}
	for name, n := range other.Wins {
		s.Wins[name] += n
	}
	s.Drawn += other.Drawn
	s.SumDrawn += other.SumDrawn
	s.SumDrawn2 += other.SumDrawn2
}

// HandCount returns the number of final hands recorded
func (s *Statistics) HandCount() int {
	total := 0
	for _, n := range s.Hands {
		total += n
	}
	return total
}

// Frequency returns the share of final hands that were of category c
func (s *Statistics) Frequency(c poker.Category) float64 {
	total := s.HandCount()
	if total == 0 {
		return 0
	}
	return float64(s.Hands[c]) / float64(total)
}

// DrawRate returns the share of rounds that ended without a winner
func (s *Statistics) DrawRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Rounds)
}

// MeanDrawn returns the average number of cards drawn per hand
func (s *Statistics) MeanDrawn() float64 {
	if s.Drawn == 0 {
		return 0
	}
	return s.SumDrawn / float64(s.Drawn)
}

// VarianceDrawn returns the sample variance of cards drawn per hand
func (s *Statistics) VarianceDrawn() float64 {
	if s.Drawn < 2 {
		return 0
	}
	mean := s.MeanDrawn()
	return (s.SumDrawn2 - float64(s.Drawn)*mean*mean) / float64(s.Drawn-1)
}

// StdDevDrawn returns the sample standard deviation of cards drawn per hand
func (s *Statistics) StdDevDrawn() float64 {
	return math.Sqrt(s.VarianceDrawn())
}

// Players returns the names with at least one win, most wins first.
func (s *Statistics) Players() []string {
	names := slices.Sorted(maps.Keys(s.Wins))
	slices.SortStableFunc(names, func(a, b string) int {
		return s.Wins[b] - s.Wins[a]
	})
	return names
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	winning := 0
	for _, n := range s.Winning {
		winning += n
	}
	if winning != s.Rounds {
		return fmt.Errorf("winning categories total (%d) does not match rounds (%d)", winning, s.Rounds)
	}

	wins := 0
	for _, n := range s.Wins {
		wins += n
	}
	if wins+s.Draws != s.Rounds {
		return fmt.Errorf("wins (%d) plus draws (%d) does not match rounds (%d)", wins, s.Draws, s.Rounds)
	}

	if s.HandCount() != s.Drawn {
		return fmt.Errorf("hands (%d) does not match draw samples (%d)", s.HandCount(), s.Drawn)
	}
	return nil
}
