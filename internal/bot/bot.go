// Package bot provides computer-controlled discard strategies. A Seat
// attaches a strategy to one named player by answering that player's
// select-discards events.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/poker"
)

// Strategy names accepted in configuration
const (
	Stand  = "stand"
	Draw   = "draw"
	Random = "random"
	Human  = "human"
)

var (
	// ErrUnknownStrategy is returned for a strategy name nobody implements.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrInteractive is returned when asked to build a bot for a human seat.
	ErrInteractive = errors.New("human seats are played from the terminal")
)

// Strategy chooses which cards of a sorted hand to throw away. It returns
// indexes into hand.
type Strategy interface {
	Name() string
	Discards(hand poker.Hand) []int
}

// Names returns every strategy a seat may be configured with
func Names() []string {
	return []string{Stand, Draw, Random, Human}
}

// Known reports whether name is a valid strategy
func Known(name string) bool {
	return slices.Contains(Names(), name)
}

// New creates the named computer strategy. The random strategy draws from
// rng, which must not be shared across goroutines.
func New(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case Stand:
		return StandBot{}, nil
	case Draw:
		return DrawBot{}, nil
	case Random:
		return NewRandBot(rng), nil
	case Human:
		return nil, ErrInteractive
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Seat plays one player's draw with a strategy
type Seat struct {
	player   string
	strategy Strategy
	logger   *log.Logger
}

// NewSeat binds strategy to the player called name
func NewSeat(name string, strategy Strategy, logger *log.Logger) *Seat {
	return &Seat{
		player:   name,
		strategy: strategy,
		logger:   logger.WithPrefix("bot"),
	}
}

// OnEvent marks discards when it is this seat's turn to draw
func (s *Seat) OnEvent(event game.GameEvent) {
	sel, ok := event.(game.SelectDiscardsEvent)
	if !ok || sel.Player.Name != s.player {
		return
	}

	hand := sel.Player.Hand()
	discards := s.strategy.Discards(hand)
	for _, idx := range discards {
		if err := sel.Player.MarkDiscard(idx); err != nil {
			s.logger.Warn("Strategy chose an invalid discard", "player", s.player, "strategy", s.strategy.Name(), "error", err)
		}
	}
	s.logger.Debug("Discards selected",
		"player", s.player,
		"strategy", s.strategy.Name(),
		"hand", hand,
		"discards", len(discards))
}
