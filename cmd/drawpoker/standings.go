package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/lox/drawpoker/internal/config"
	"github.com/lox/drawpoker/internal/display"
	"github.com/lox/drawpoker/internal/game"
	"github.com/lox/drawpoker/internal/store"
)

type StandingsCmd struct {
	Config   string `short:"c" default:"drawpoker.hcl" type:"path" help:"HCL configuration file"`
	SaveFile string `help:"Standings file (overrides config)"`
	NoColor  bool   `help:"Disable colour output"`

	out io.Writer
}

func (c *StandingsCmd) Run() error {
	path := c.SaveFile
	if path == "" {
		cfg, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		path = cfg.Game.SaveFile
	}

	standings, err := store.Load(path)
	if err != nil {
		return err
	}
	out := stdout(c.out)
	if len(standings) == 0 {
		fmt.Fprintf(out, "No standings saved in %s\n", path)
		return nil
	}

	slices.SortStableFunc(standings, func(a, b game.Standing) int {
		return cmp.Compare(b.Wins, a.Wins)
	})
	display.NewConsole(out, !c.NoColor).Standings(standings)
	return nil
}
