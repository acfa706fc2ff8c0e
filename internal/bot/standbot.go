package bot

import "github.com/lox/drawpoker/poker"

// StandBot never draws
type StandBot struct{}

func (StandBot) Name() string { return Stand }

func (StandBot) Discards(poker.Hand) []int { return nil }
