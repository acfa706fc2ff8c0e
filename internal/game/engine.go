package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/drawpoker/internal/roundid"
	"github.com/lox/drawpoker/poker"
)

// RoundResult summarises one completed round
type RoundResult struct {
	ID      string
	Number  int
	Outcome Outcome
	Hands   map[string]poker.Evaluation
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEventBus sets the bus events are published on
func WithEventBus(bus EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithClock sets the clock used to pause between rounds
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRoundDelay pauses Run for d between rounds
func WithRoundDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithMaxRounds stops Run after n rounds. Zero means no limit.
func WithMaxRounds(n int) Option {
	return func(e *Engine) { e.maxRounds = n }
}

// WithRoundIDs replaces the round ID generator
func WithRoundIDs(next func() string) Option {
	return func(e *Engine) { e.nextID = next }
}

// Engine drives the five-card-draw round loop: deal, discard, replace,
// reveal, compare, collect. It is not safe for concurrent use except for Stop.
type Engine struct {
	dealer  Dealer
	players []*Player
	bus     EventBus
	logger  *log.Logger
	clock   quartz.Clock
	nextID  func() string

	delay     time.Duration
	maxRounds int

	state    RoundState
	rounds   int
	stopped  atomic.Bool
	stopOnce sync.Once
	stopping chan struct{}
}

// NewEngine creates an engine for the given players. The players are dealt,
// drawn and compared in slice order.
func NewEngine(dealer Dealer, players []*Player, opts ...Option) (*Engine, error) {
	if dealer == nil {
		panic("dealer is required for engine creation")
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("creating engine: %w", ErrEmptyPlayerSet)
	}

	e := &Engine{
		dealer:   dealer,
		players:  players,
		bus:      NewEventBus(),
		logger:   log.New(io.Discard),
		clock:    quartz.NewReal(),
		nextID:   roundid.New,
		state:    AwaitingDeal,
		stopping: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithPrefix("engine")
	return e, nil
}

// EventBus returns the bus for subscribing to round events
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// Players returns the seated players
func (e *Engine) Players() []*Player {
	return e.players
}

// State returns the current position in the round lifecycle
func (e *Engine) State() RoundState {
	return e.state
}

// Rounds returns the number of completed rounds
func (e *Engine) Rounds() int {
	return e.rounds
}

// Standings returns every player's name and win count
func (e *Engine) Standings() []Standing {
	out := make([]Standing, len(e.players))
	for i, p := range e.players {
		out[i] = p.Standing()
	}
	return out
}

// Stop asks Run to return at the next round boundary, or at once if Run is
// pausing between rounds. It may be called from any goroutine, including from
// within a subscriber.
func (e *Engine) Stop() {
	e.stopped.Store(true)
	e.stopOnce.Do(func() { close(e.stopping) })
}

// Running reports whether Stop has not been requested
func (e *Engine) Running() bool {
	return !e.stopped.Load()
}

// Run plays rounds until the context is cancelled, Stop is called or the
// round limit is reached. Stopping is only observed between rounds; a round
// in progress always completes. Run returns the first round error.
func (e *Engine) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil || !e.Running() {
			e.logger.Info("Game stopped", "rounds", e.rounds)
			return nil
		}

		if _, err := e.PlayRound(ctx); err != nil {
			return err
		}

		if e.maxRounds > 0 && e.rounds >= e.maxRounds {
			e.logger.Info("Round limit reached", "rounds", e.rounds)
			return nil
		}

		if e.delay > 0 && e.Running() {
			if err := e.pause(ctx); err != nil {
				e.logger.Info("Game stopped", "rounds", e.rounds)
				return nil
			}
		}
	}
}

var errStopped = errors.New("engine stopped")

func (e *Engine) pause(ctx context.Context) error {
	timer := e.clock.NewTimer(e.delay, "engine", "pause")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-e.stopping:
		return errStopped
	case <-timer.C:
		return nil
	}
}

// PlayRound runs one complete round starting from AwaitingDeal. Any error
// leaves the round unfinished and the engine unusable.
func (e *Engine) PlayRound(ctx context.Context) (*RoundResult, error) {
	if e.state != AwaitingDeal {
		return nil, fmt.Errorf("cannot start round in state %s", e.state)
	}

	result := &RoundResult{
		ID:     e.nextID(),
		Number: e.rounds + 1,
		Hands:  make(map[string]poker.Evaluation, len(e.players)),
	}
	logger := e.logger.With("round", result.Number)
	logger.Debug("Starting round", "id", result.ID)

	e.bus.Publish(NewDealEvent{roundEvent: e.event(result.ID), Number: result.Number})
	for _, p := range e.players {
		if err := e.dealer.DealHand(p); err != nil {
			return nil, fmt.Errorf("round %d: %w", result.Number, err)
		}
	}
	e.transition(logger, HandsDealt)

	contenders := make([]Contender, 0, len(e.players))
	for _, p := range e.players {
		eval, err := e.draw(logger, result.ID, p)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", result.Number, err)
		}
		result.Hands[p.Name] = eval
		contenders = append(contenders, Contender{Player: p, Hand: eval})
	}

	e.bus.Publish(ShowAllHandsEvent{roundEvent: e.event(result.ID), Players: e.players})
	e.transition(logger, HandsRevealed)

	outcome, err := ResolveWinners(contenders)
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", result.Number, err)
	}
	outcome.apply()
	result.Outcome = outcome
	e.transition(logger, Compared)
	if outcome.Draw() {
		logger.Info("Round drawn", "category", outcome.Category, "players", playerNames(outcome.Winners))
		e.bus.Publish(DrawEvent{roundEvent: e.event(result.ID), Players: outcome.Winners, Category: outcome.Category})
	} else {
		winner := outcome.Winner()
		logger.Info("Round won", "winner", winner.Name, "category", outcome.Category, "wins", winner.Wins())
		e.bus.Publish(WinnerEvent{roundEvent: e.event(result.ID), Player: winner, Category: outcome.Category})
	}

	e.dealer.CollectDiscards()
	e.dealer.Rebuild()
	e.rounds++
	e.transition(logger, AwaitingDeal)
	e.bus.Publish(RoundCompleteEvent{roundEvent: e.event(result.ID), Result: *result})

	return result, nil
}

// draw takes one player from HandsDealt through discard selection and
// replacement, returning the evaluation of the completed hand.
func (e *Engine) draw(logger *log.Logger, roundID string, p *Player) (poker.Evaluation, error) {
	p.sortHand()
	p.clearDiscards()
	e.bus.Publish(SelectDiscardsEvent{roundEvent: e.event(roundID), Player: p})
	e.transition(logger, DiscardSelected)

	discarded := p.removeDiscards()
	e.dealer.Discard(discarded)
	if err := e.dealer.Replace(p, len(discarded)); err != nil {
		return poker.Evaluation{}, err
	}
	p.sortHand()
	logger.Debug("Drew cards", "player", p.Name, "discarded", len(discarded), "hand", p.hand)
	e.bus.Publish(ReplacementReceivedEvent{roundEvent: e.event(roundID), Player: p, Discarded: discarded})

	eval, err := poker.Evaluate(p.hand)
	if err != nil {
		return poker.Evaluation{}, fmt.Errorf("evaluating %s: %w", p.Name, err)
	}
	p.evaluation = &eval
	e.transition(logger, HandsReplaced)
	return eval, nil
}

func (e *Engine) event(roundID string) roundEvent {
	return newRoundEvent(roundID, e.clock.Now())
}

func (e *Engine) transition(logger *log.Logger, to RoundState) {
	logger.Debug("Round state", "from", e.state, "to", to)
	e.state = to
}

func playerNames(players []*Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}
