// Package config loads the HCL game configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawpoker/internal/bot"
	"github.com/lox/drawpoker/internal/game"
)

// Seat limits. Ten hands of five leave two cards in the deck.
const (
	MinSeats = 2
	MaxSeats = 10
)

// DefaultStrategy plays seats that do not name a strategy
const DefaultStrategy = bot.Human

// Config represents the complete game configuration
type Config struct {
	Game    *GameSettings `hcl:"game,block"`
	Players []SeatConfig  `hcl:"player,block"`
}

// GameSettings contains session level configuration
type GameSettings struct {
	SaveFile   string `hcl:"save_file,optional"`
	Seed       *int64 `hcl:"seed,optional"`
	MaxRounds  int    `hcl:"max_rounds,optional"`
	RoundDelay string `hcl:"round_delay,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	LogFile    string `hcl:"log_file,optional"`
}

// SeatConfig defines one player at the table
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{Game: defaultSettings()}
	c.FillSeats()
	return c
}

func defaultSettings() *GameSettings {
	return &GameSettings{
		SaveFile:   "standings.txt",
		RoundDelay: "0s",
		LogLevel:   "info",
		LogFile:    "drawpoker.log",
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := defaultSettings()
	if c.Game == nil {
		c.Game = defaults
	}
	if c.Game.SaveFile == "" {
		c.Game.SaveFile = defaults.SaveFile
	}
	if c.Game.RoundDelay == "" {
		c.Game.RoundDelay = defaults.RoundDelay
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = defaults.LogLevel
	}
	if c.Game.LogFile == "" {
		c.Game.LogFile = defaults.LogFile
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = DefaultStrategy
		}
	}
	c.FillSeats()
}

// FillSeats makes sure there is somebody to play against: no seats become
// player1 and player2, and a lone seat is joined by player.
func (c *Config) FillSeats() {
	switch len(c.Players) {
	case 0:
		c.Players = []SeatConfig{
			{Name: "player1", Strategy: DefaultStrategy},
			{Name: "player2", Strategy: DefaultStrategy},
		}
	case 1:
		c.Players = append(c.Players, SeatConfig{Name: "player", Strategy: DefaultStrategy})
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game == nil {
		return fmt.Errorf("missing game settings")
	}
	if c.Game.SaveFile == "" {
		return fmt.Errorf("save_file must be set")
	}
	if c.Game.MaxRounds < 0 {
		return fmt.Errorf("max_rounds must not be negative: %d", c.Game.MaxRounds)
	}
	if _, err := c.RoundDelay(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if len(c.Players) < MinSeats || len(c.Players) > MaxSeats {
		return fmt.Errorf("players must be between %d and %d, got %d", MinSeats, MaxSeats, len(c.Players))
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("player name must not be empty")
		}
		if strings.ContainsAny(p.Name, "\t\r\n") || strings.HasPrefix(p.Name, "#") {
			return fmt.Errorf("player %q: name cannot be saved", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("player %q is seated twice", p.Name)
		}
		seen[p.Name] = true
		if !bot.Known(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s (want one of %s)", p.Name, p.Strategy, strings.Join(bot.Names(), ", "))
		}
	}
	return nil
}

// RoundDelay parses the pause between rounds
func (c *Config) RoundDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Game.RoundDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid round_delay %q: %w", c.Game.RoundDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("round_delay must not be negative: %s", d)
	}
	return d, nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Game.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.Game.LogLevel, err)
	}
	return level, nil
}

// Standings returns the seated players with no wins, in seat order
func (c *Config) Standings() []game.Standing {
	out := make([]game.Standing, len(c.Players))
	for i, p := range c.Players {
		out[i] = game.Standing{Name: p.Name}
	}
	return out
}

// HasHuman reports whether any seat is played from the terminal
func (c *Config) HasHuman() bool {
	for _, p := range c.Players {
		if p.Strategy == bot.Human {
			return true
		}
	}
	return false
}

// ParseSeat parses a command line seat of the form name[:strategy]
func ParseSeat(s string) (SeatConfig, error) {
	name, strategy, _ := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return SeatConfig{}, fmt.Errorf("invalid seat %q: missing name", s)
	}
	if strategy == "" {
		strategy = DefaultStrategy
	}
	if !bot.Known(strategy) {
		return SeatConfig{}, fmt.Errorf("invalid seat %q: unknown strategy %s", s, strategy)
	}
	return SeatConfig{Name: name, Strategy: strategy}, nil
}
