package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/poker"
)

// TestEngineOption configures test engine creation
type TestEngineOption func(*testEngineBuilder)

type testEngineBuilder struct {
	seed    int64
	players []string
	opts    []Option
}

// WithSeed sets the deck shuffle seed
func WithSeed(seed int64) TestEngineOption {
	return func(b *testEngineBuilder) { b.seed = seed }
}

// WithPlayers seats the named players
func WithPlayers(names ...string) TestEngineOption {
	return func(b *testEngineBuilder) { b.players = names }
}

// WithEngineOptions passes options through to NewEngine
func WithEngineOptions(opts ...Option) TestEngineOption {
	return func(b *testEngineBuilder) { b.opts = append(b.opts, opts...) }
}

// NewTestEngine creates a table and engine with sensible defaults: two
// players, seed 42 and a discarding logger.
func NewTestEngine(opts ...TestEngineOption) (*Table, *Engine) {
	builder := &testEngineBuilder{
		seed:    42,
		players: []string{"Alice", "Bob"},
	}
	for _, opt := range opts {
		opt(builder)
	}

	logger := log.New(io.Discard)
	table := NewTable(randutil.New(builder.seed), logger)

	standings := make([]Standing, len(builder.players))
	for i, name := range builder.players {
		standings[i] = Standing{Name: name}
	}
	players := NewPlayers(standings)
	table.Seat(players...)

	engineOpts := append([]Option{WithLogger(logger)}, builder.opts...)
	engine, err := NewEngine(table, players, engineOpts...)
	if err != nil {
		panic(fmt.Sprintf("creating test engine: %v", err))
	}
	return table, engine
}

// NewTestContender builds a contender from a hand string such as "♣4♥J♠Q♥K♥A".
func NewTestContender(name, hand string) (Contender, error) {
	cards, err := poker.ParseCards(hand)
	if err != nil {
		return Contender{}, err
	}
	return NewContender(name, cards)
}
