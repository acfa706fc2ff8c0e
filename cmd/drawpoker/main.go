package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Play      PlayCmd          `cmd:"" default:"withargs" help:"Play five-card draw at the terminal"`
	Simulate  SimulateCmd      `cmd:"" help:"Play bots against each other on parallel tables"`
	Eval      EvalCmd          `cmd:"" help:"Evaluate and compare hands"`
	Standings StandingsCmd     `cmd:"" help:"Show saved standings"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawpoker"),
		kong.Description("Five-card draw poker for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
