package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/randutil"
	"github.com/lox/drawpoker/internal/store"
)

type PlayCmd struct {
	Config    string   `short:"c" default:"drawpoker.hcl" type:"path" help:"HCL configuration file"`
	Seat      []string `short:"s" sep:"none" help:"Seat a player as name[:strategy]; replaces configured players (strategies: stand, draw, random, human)"`
	SaveFile  string   `help:"Standings file (overrides config)"`
	Seed      int64    `default:"0" help:"Shuffle seed (0 uses config or random)"`
	MaxRounds int      `default:"-1" help:"Stop after this many rounds, 0 for no limit (overrides config)"`
	Delay     string   `help:"Pause between rounds, e.g. 2s (overrides config)"`
	LogLevel  string   `help:"debug, info, warn or error (overrides config)"`
	NoColor   bool     `help:"Disable colour output"`

	in  io.Reader
	out io.Writer
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := c.applyOverrides(cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.LogLevel()
	delay, _ := cfg.RoundDelay()

	// The picker owns the terminal, so logs go to a file when a person plays.
	logOut := io.Writer(os.Stderr)
	if cfg.HasHuman() {
		f, err := openLogFile(cfg.Game.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, level)

	saved, err := store.Load(cfg.Game.SaveFile)
	if err != nil {
		return err
	}
	standings := store.Restore(cfg.Standings(), saved)

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Starting game", "seed", seed, "players", len(standings), "save_file", cfg.Game.SaveFile)

	table := game.NewTable(randutil.New(seed), logger)
	players := game.NewPlayers(standings)
	table.Seat(players...)

	engine, err := game.NewEngine(table, players,
		game.WithLogger(logger),
		game.WithRoundDelay(delay),
		game.WithMaxRounds(cfg.Game.MaxRounds),
	)
	if err != nil {
		return err
	}

	out := stdout(c.out)
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	bus := engine.EventBus()
	for i, seat := range cfg.Players {
		if seat.Strategy == bot.Human {
			prompt := display.TerminalPrompt(in, out, !c.NoColor)
			bus.Subscribe(display.NewHumanSeat(seat.Name, prompt, engine.Stop, logger))
			continue
		}
		strategy, err := bot.New(seat.Strategy, randutil.New(randutil.Derive(seed, i+1)))
		if err != nil {
			return fmt.Errorf("seating %s: %w", seat.Name, err)
		}
		bus.Subscribe(bot.NewSeat(seat.Name, strategy, logger))
	}
	console := display.NewConsole(out, !c.NoColor)
	bus.Subscribe(console)
	saver := store.NewAutosaver(cfg.Game.SaveFile, engine, logger)
	bus.Subscribe(saver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := engine.Run(ctx)

	if err := saver.Flush(); err != nil {
		return fmt.Errorf("saving standings: %w", err)
	}
	fmt.Fprintln(out)
	console.Standings(engine.Standings())
	return runErr
}

func (c *PlayCmd) applyOverrides(cfg *config.Config) error {
	if len(c.Seat) > 0 {
		cfg.Players = nil
		for _, s := range c.Seat {
			seat, err := config.ParseSeat(s)
			if err != nil {
				return err
			}
			cfg.Players = append(cfg.Players, seat)
		}
		cfg.FillSeats()
	}
	if c.SaveFile != "" {
		cfg.Game.SaveFile = c.SaveFile
	}
	if c.Seed != 0 {
		seed := c.Seed
		cfg.Game.Seed = &seed
	}
	if c.MaxRounds >= 0 {
		cfg.Game.MaxRounds = c.MaxRounds
	}
	if c.Delay != "" {
		cfg.Game.RoundDelay = c.Delay
	}
	if c.LogLevel != "" {
		cfg.Game.LogLevel = c.LogLevel
	}
	return nil
}
