package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/statistics"
)

type SimulateCmd struct {
	Tables     int      `default:"4" help:"Number of independent tables"`
	Rounds     int      `default:"10000" help:"Rounds per table"`
	Strategies []string `default:"draw,stand" help:"Strategy for each seat (stand, draw, random)"`
	Seed       int64    `default:"0" help:"RNG seed (0 for random)"`
	Workers    int      `default:"0" help:"Tables played at once (0 for one per CPU)"`
	NoColor    bool     `help:"Disable colour output"`
	Verbose    bool     `short:"V" help:"Verbose logging"`

	out io.Writer
}

func (c *SimulateCmd) Run() error {
	if err := c.validate(); err != nil {
		return err
	}

	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	var seed *int64
	if c.Seed != 0 {
		seed = &c.Seed
	}
	base := randutil.Seed(seed)
	logger.Info("Starting simulation", "seed", base, "tables", c.Tables, "rounds", c.Rounds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := c.simulate(ctx, base, logger)
	if err != nil {
		return err
	}
	if err := stats.Validate(); err != nil {
		return fmt.Errorf("inconsistent statistics: %w", err)
	}

	display.NewConsole(stdout(c.out), !c.NoColor).Statistics(stats)
	return nil
}

func (c *SimulateCmd) validate() error {
	if c.Tables < 1 {
		return fmt.Errorf("tables must be positive: %d", c.Tables)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be positive: %d", c.Rounds)
	}
	if len(c.Strategies) < config.MinSeats || len(c.Strategies) > config.MaxSeats {
		return fmt.Errorf("strategies must name between %d and %d seats, got %d", config.MinSeats, config.MaxSeats, len(c.Strategies))
	}
	for _, s := range c.Strategies {
		if s == bot.Human {
			return fmt.Errorf("simulations cannot seat human players")
		}
		if !bot.Known(s) {
			return fmt.Errorf("%w: %q", bot.ErrUnknownStrategy, s)
		}
	}
	return nil
}

// simulate plays every table on its own goroutine and merges the results.
// Each table derives its own seed, so results depend only on base.
func (c *SimulateCmd) simulate(ctx context.Context, base int64, logger *log.Logger) (*statistics.Statistics, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]*statistics.Statistics, c.Tables)
	for t := range c.Tables {
		tableSeed := randutil.Derive(base, t)
		g.Go(func() error {
			stats, err := c.playTable(ctx, t, tableSeed, logger)
			if err != nil {
				return fmt.Errorf("table %d: %w", t+1, err)
			}
			results[t] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.New()
	for _, s := range results {
		merged.Merge(s)
	}
	return merged, nil
}

func (c *SimulateCmd) playTable(ctx context.Context, n int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	logger = logger.With("table", n+1)
	rng := randutil.New(seed)

	standings := make([]game.Standing, len(c.Strategies))
	for i, s := range c.Strategies {
		standings[i] = game.Standing{Name: fmt.Sprintf("%s-%d", s, i+1)}
	}
	table := game.NewTable(rng, logger)
	players := game.NewPlayers(standings)
	table.Seat(players...)

	engine, err := game.NewEngine(table, players,
		game.WithLogger(logger),
		game.WithMaxRounds(c.Rounds),
	)
	if err != nil {
		return nil, err
	}

	for i, s := range c.Strategies {
		strategy, err := bot.New(s, randutil.New(randutil.Derive(seed, i+1)))
		if err != nil {
			return nil, err
		}
		engine.EventBus().Subscribe(bot.NewSeat(standings[i].Name, strategy, logger))
	}
	collector := statistics.NewCollector()
	engine.EventBus().Subscribe(collector)

	if err := engine.Run(ctx); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collector.Statistics(), nil
}
